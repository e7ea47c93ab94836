package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopService_Cars(t *testing.T) {
	svc := NewShopService(setupRepos(t).cars, "ETIMAD", "", "AE")

	assert.Len(t, svc.Cars("", AllMakes), 7)
	assert.Len(t, svc.Cars("", ""), 7)

	toyota := svc.Cars("", "Toyota")
	require.Len(t, toyota, 1)
	assert.Equal(t, "car1", toyota[0].ID)

	assert.Empty(t, svc.Cars("patrol", "Toyota"))
	assert.Len(t, svc.Cars("patrol", AllMakes), 1)
}

func TestShopService_Makes(t *testing.T) {
	svc := NewShopService(setupRepos(t).cars, "ETIMAD", "", "AE")

	assert.Equal(t, []string{"All", "Toyota", "BMW", "Mercedes-Benz", "Nissan", "Porsche", "Range Rover", "Audi"}, svc.Makes())
}

func TestShopService_WhatsAppLink(t *testing.T) {
	svc := NewShopService(setupRepos(t).cars, "ETIMAD", "", "AE")

	link, err := svc.WhatsAppLink("car1")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/?text=Hi%20ETIMAD%2C%20I%20am%20interested%20in%20the%202022%20Toyota%20Land%20Cruiser.", link)

	_, err = svc.WhatsAppLink("ghost")
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestShopService_WhatsAppLink_DealerNumber(t *testing.T) {
	svc := NewShopService(setupRepos(t).cars, "ETIMAD", "04 123 4567", "AE")

	link, err := svc.WhatsAppLink("car2")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/97141234567?text=Hi%20ETIMAD%2C%20I%20am%20interested%20in%20the%202023%20BMW%20X5%20M50i.", link)
}
