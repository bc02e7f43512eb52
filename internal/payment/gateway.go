package payment

import (
	"context"
	"time"

	"tastebite-be/internal/logger"
	"tastebite-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProcessingDelay is how long a charge takes end to end. Once started it
// runs to completion even if the caller goes away.
const ProcessingDelay = 2 * time.Second

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Receipt, error)
}

type simulatedGateway struct {
	delay time.Duration
	now   func() time.Time
}

func NewSimulatedGateway() Gateway {
	return &simulatedGateway{
		delay: ProcessingDelay,
		now:   time.Now,
	}
}

// Charge validates the request, then settles after a fixed processing
// delay. The delay is not interruptible: a charge that has begun always
// completes.
func (g *simulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*Receipt, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("method", string(req.Method)),
		zap.Int("amount", req.AmountDue),
	)
	log.Info("processing payment")

	time.Sleep(g.delay)

	receipt := &Receipt{
		ReferenceID: uuid.NewString(),
		Method:      req.Method,
		Amount:      req.AmountDue,
		PaidAt:      g.now(),
		Instructions: InjectVariables(GetInstructions(req.Method), InstructionVars{
			"amount": utils.FormatKwacha(req.AmountDue),
			"phone":  req.AirtelNum,
		}),
	}

	log.Info("payment settled", zap.String("reference_id", receipt.ReferenceID))
	return receipt, nil
}
