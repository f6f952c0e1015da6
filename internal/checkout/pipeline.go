package checkout

import (
	"context"
	"fmt"

	"github.com/nikolayk812/indukitchen/internal/checkout/steps"
)

// Pipeline runs the persistence steps of a checkout in order and stops at the first failure.
type Pipeline struct {
	steps []steps.Step
}

func NewPipeline() Pipeline {
	return Pipeline{
		steps: []steps.Step{
			steps.EnsureCustomer{},
			steps.CreateCart{},
			steps.CreateInvoice{},
		},
	}
}

func (p Pipeline) Run(ctx context.Context, state *steps.State) error {
	for idx, step := range p.steps {
		if err := step.Run(ctx, state); err != nil {
			return fmt.Errorf("step.Run[%d][%s]: %w", idx, step.Name(), err)
		}
	}

	return nil
}
