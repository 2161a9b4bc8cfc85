package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/madenai/arqflow/internal/db/models"
)

type AlertRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *AlertRepositoryTestSuite) createTestAlert(severity models.AlertSeverity, message string) *models.Alert {
	alert := &models.Alert{
		Severity: severity,
		Message:  message,
		Source:   "budget-worker",
	}
	err := s.alertRepo.Create(s.ctx, alert)
	s.Require().NoError(err)
	return alert
}

func (s *AlertRepositoryTestSuite) TestCreateAndListAlerts() {
	s.createTestAlert(models.AlertWarning, "fila de geração acima do normal")
	s.createTestAlert(models.AlertCritical, "gateway de pagamento indisponível")

	alerts, err := s.alertRepo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(alerts, 2)
}

func (s *AlertRepositoryTestSuite) TestListUnacknowledgedFirst() {
	old := s.createTestAlert(models.AlertInfo, "primeiro alerta")
	fresh := s.createTestAlert(models.AlertWarning, "segundo alerta")

	err := s.alertRepo.Acknowledge(s.ctx, fresh.ID)
	s.Require().NoError(err)

	alerts, err := s.alertRepo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(alerts, 2)
	s.Require().Equal(old.ID, alerts[0].ID)
	s.Require().False(alerts[0].Acknowledged)
	s.Require().Equal(fresh.ID, alerts[1].ID)
	s.Require().True(alerts[1].Acknowledged)
}

func (s *AlertRepositoryTestSuite) TestAcknowledge() {
	alert := s.createTestAlert(models.AlertCritical, "uso de tokens acima da cota global")

	err := s.alertRepo.Acknowledge(s.ctx, alert.ID)
	s.Require().NoError(err)

	alerts, err := s.alertRepo.List(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(alerts, 1)
	s.Require().True(alerts[0].Acknowledged)
}

func TestAlertRepositorySuite(t *testing.T) {
	suite.Run(t, new(AlertRepositoryTestSuite))
}
