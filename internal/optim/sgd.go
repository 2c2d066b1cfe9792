package optim

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate descent in relevant directions and dampens oscillations.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for range iterations {
//	    grads := ... // from autodiff.Accumulate
//	    optimizer.Step(params, grads)
//	}
type SGD struct {
	lr         float64
	momentum   float64
	velocities []float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step.
//
// Velocities are sized on first use; changing the parameter count without
// calling Reset reinitialises them.
func (s *SGD) Step(params, grads []float64) error {
	if err := checkLengths(params, grads); err != nil {
		return err
	}

	if s.momentum == 0 {
		for i, g := range grads {
			params[i] -= s.lr * g
		}
		return nil
	}

	if len(s.velocities) != len(params) {
		s.velocities = make([]float64, len(params))
	}
	for i, g := range grads {
		s.velocities[i] = s.momentum*s.velocities[i] + g
		params[i] -= s.lr * s.velocities[i]
	}
	return nil
}

// Reset clears the velocities.
func (s *SGD) Reset() {
	s.velocities = nil
}

// GetLR returns the learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}
