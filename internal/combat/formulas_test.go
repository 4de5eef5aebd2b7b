package combat

import "testing"

func TestPhysicalDamage(t *testing.T) {
	tests := []struct {
		name    string
		attack  int
		defense int
		rf      float32
		want    int
	}{
		{"half defense", 8, 2, 1.0, 7},
		{"odd defense truncates", 8, 3, 1.0, 7},
		{"scaled down", 10, 0, 0.8, 8},
		{"scaled up", 10, 0, 1.2, 12},
		{"half rounds away from zero", 3, 0, 1.5, 5},
		{"minimum one", 2, 20, 1.0, 1},
		{"zero attack", 0, 0, 1.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhysicalDamage(tt.attack, tt.defense, tt.rf); got != tt.want {
				t.Errorf("PhysicalDamage(%d, %d, %v) = %d, want %d", tt.attack, tt.defense, tt.rf, got, tt.want)
			}
		})
	}
}

func TestMagicDamage(t *testing.T) {
	tests := []struct {
		power   int
		defense int
		rf      float32
		want    int
	}{
		{12, 0, 1.0, 12},
		{12, 8, 1.0, 10},
		{12, 7, 1.0, 11},
		{14, 4, 0.5, 7},
		{1, 40, 1.0, 1},
	}

	for _, tt := range tests {
		if got := MagicDamage(tt.power, tt.defense, tt.rf); got != tt.want {
			t.Errorf("MagicDamage(%d, %d, %v) = %d, want %d", tt.power, tt.defense, tt.rf, got, tt.want)
		}
	}
}

func TestHealAndDrainAmount(t *testing.T) {
	if got := HealAmount(15, 1.0); got != 15 {
		t.Errorf("HealAmount(15, 1.0) = %d, want 15", got)
	}
	if got := HealAmount(15, 0.8); got != 12 {
		t.Errorf("HealAmount(15, 0.8) = %d, want 12", got)
	}
	if got := HealAmount(0, 1.0); got != 1 {
		t.Errorf("HealAmount(0, 1.0) = %d, want 1", got)
	}
	if got := DrainAmount(6, 1.0); got != 6 {
		t.Errorf("DrainAmount(6, 1.0) = %d, want 6", got)
	}
	if got := DrainAmount(5, 1.5); got != 8 {
		t.Errorf("DrainAmount(5, 1.5) = %d, want 8", got)
	}
}

func TestAilmentSucceeds(t *testing.T) {
	tests := []struct {
		rate int
		rf   float32
		want bool
	}{
		{60, 0.5, true},
		{60, 0.75, false},
		{95, 0.9, true},
		{95, 1.0, false},
		{100, 0.99, true},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := AilmentSucceeds(tt.rate, tt.rf); got != tt.want {
			t.Errorf("AilmentSucceeds(%d, %v) = %v, want %v", tt.rate, tt.rf, got, tt.want)
		}
	}
}
