package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosala-labs/mosala-backend/dao/model"
)

func TestDecisionBody(t *testing.T) {
	accepted := decisionBody("Amina", "Ferme avicole de Dolisie", "Investisseur principal",
		model.DecisionAccept, "Bienvenue à bord")
	assert.Contains(t, accepted, "Amina")
	assert.Contains(t, accepted, "acceptée")
	assert.Contains(t, accepted, "Investisseur principal")
	assert.Contains(t, accepted, "Bienvenue à bord")

	rejected := decisionBody("Amina", "Ferme avicole de Dolisie", "Investisseur principal",
		model.DecisionReject, "")
	assert.Contains(t, rejected, "n'a pas été retenue")
	assert.NotContains(t, rejected, "Note du porteur")
}

func TestDecisionSubject(t *testing.T) {
	assert.Contains(t, decisionSubject(model.DecisionAccept, "P"), "acceptée")
	assert.Contains(t, decisionSubject(model.DecisionReject, "P"), "non retenue")
}

func TestAnomalyBodyCarriesTotals(t *testing.T) {
	body := anomalyBody("Brasserie du fleuve", 12, 130)
	assert.Contains(t, body, "130%")
	assert.Contains(t, body, "id 12")
}
