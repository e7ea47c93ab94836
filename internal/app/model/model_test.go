package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortReference(t *testing.T) {
	assert.Equal(t, "3F2A9C1B", ShortReference("3f2a9c1b-77aa-4e1d-9a0e-0d7c5b1a2b3c"))
	assert.Equal(t, "Q1", ShortReference("q1"))
	assert.Equal(t, "Q1", Quotation{ID: "q1"}.Reference())
	assert.Equal(t, "R1", Receipt{ID: "r1"}.Number())
}

func TestAddOn_Valid(t *testing.T) {
	for _, a := range AddOnOptions {
		assert.True(t, a.Valid(), a)
	}
	assert.False(t, AddOn("Free Fuel").Valid())
	assert.False(t, AddOn("polishing").Valid())
}

func TestStatusSets(t *testing.T) {
	assert.True(t, CustomerStatusActionRequired.Valid())
	assert.False(t, CustomerStatus("Rejected").Valid())
	assert.True(t, CarStatusSold.Valid())
	assert.True(t, PaymentMethodBankTransfer.Valid())
	assert.False(t, PaymentMethod("Crypto").Valid())

	assert.True(t, LeadStatusNegotiation.Open())
	assert.False(t, LeadStatusClosedWon.Open())
	assert.False(t, LeadStatus("Lost").Valid())
}

func TestLeadPatch_Apply(t *testing.T) {
	car := "car1"
	lead := Lead{ID: "lead1", Name: "Michael Chen", Status: LeadStatusNew, InterestedInID: &car}

	email := "new@example.com"
	status := LeadStatusContacted
	got := LeadPatch{Email: &email, Status: &status}.Apply(lead)

	assert.Equal(t, "Michael Chen", got.Name)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, LeadStatusContacted, got.Status)
	require.NotNil(t, got.InterestedInID)
	assert.Equal(t, "car1", *got.InterestedInID)

	other := "car2"
	got = LeadPatch{InterestedInID: &other}.Apply(lead)
	assert.Equal(t, "car2", *got.InterestedInID)
	assert.Equal(t, "car1", *lead.InterestedInID)

	got = LeadPatch{ClearInterest: true, InterestedInID: &other}.Apply(lead)
	assert.Nil(t, got.InterestedInID)
}

func TestCustomer_CloneIsDeep(t *testing.T) {
	c := Customer{
		ID: "cust1",
		VerificationDetails: &VerificationDetails{
			IDNumber:      "1",
			Questionnaire: []QuestionnaireItem{{Question: "Q", Answer: "A"}},
		},
	}

	cp := c.Clone()
	cp.VerificationDetails.IDNumber = "2"
	cp.VerificationDetails.Questionnaire[0].Answer = "B"

	assert.Equal(t, "1", c.VerificationDetails.IDNumber)
	assert.Equal(t, "A", c.VerificationDetails.Questionnaire[0].Answer)
	assert.Nil(t, Customer{}.Clone().VerificationDetails)
}

func TestQuestionSet_Frozen(t *testing.T) {
	qs := QuestionSet{CustomerID: "cust2", Questions: DefaultVerificationQuestions}
	assert.False(t, qs.Frozen())

	qs.Link = &VerificationLink{Token: "abcd1234", Questions: qs.Questions}
	assert.True(t, qs.Frozen())

	cp := qs.Clone()
	cp.Questions[0] = "changed"
	cp.Link.Questions[0] = "changed"
	assert.Equal(t, "Are you a resident of UAE?", qs.Questions[0])
	assert.Equal(t, "Are you a resident of UAE?", qs.Link.Questions[0])
}

func TestCar_Title(t *testing.T) {
	assert.Equal(t, "2022 Toyota Land Cruiser", Car{Year: 2022, Make: "Toyota", Model: "Land Cruiser"}.Title())
}
