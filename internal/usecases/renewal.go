package usecases

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ryuk2345/raffussclietos/internal/entities"
	"github.com/ryuk2345/raffussclietos/internal/repository"
)

// RenewalNotifier flags active clients whose renewal date has passed. It
// only observes and logs; nothing mutates client state automatically.
type RenewalNotifier struct {
	clientRepo *repository.ClientRepository
	log        zerolog.Logger
}

func NewRenewalNotifier(clientRepo *repository.ClientRepository, log zerolog.Logger) *RenewalNotifier {
	return &RenewalNotifier{clientRepo: clientRepo, log: log}
}

// SweepDueRenewals lists Activo clients due for renewal as of now and logs
// each one. Returns how many were due.
func (n *RenewalNotifier) SweepDueRenewals() (int, error) {
	clients, err := n.clientRepo.GetAll()
	if err != nil {
		return 0, err
	}

	today := time.Now().Format("2006-01-02")
	due := 0
	for _, c := range clients {
		if c.Status != entities.StatusActivo || c.RenewalDate == "" {
			continue
		}
		if c.RenewalDate <= today {
			due++
			n.log.Info().
				Str("client_id", c.ID).
				Str("company", c.Company).
				Str("renewal_date", c.RenewalDate).
				Msg("client due for renewal")
		}
	}
	return due, nil
}
