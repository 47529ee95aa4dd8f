package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Damage subtracts amount, never dropping below zero.
func (h *HealthData) Damage(amount float64) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal adds amount up to Max.
func (h *HealthData) Heal(amount float64) {
	h.Current = min(h.Max, h.Current+amount)
}

// Kill drops health straight to zero.
func (h *HealthData) Kill() {
	h.Current = 0
}

func (h *HealthData) Alive() bool {
	return h.Current > 0
}

var Health = donburi.NewComponentType[HealthData]()
