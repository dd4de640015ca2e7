package instrument

// Telemetry is one sample of the values the HUD displays. Angles are in
// degrees. A zero TargetSpeed means no target.
type Telemetry struct {
	Pitch         float64
	Roll          float64
	Yaw           float64
	Airspeed      float64
	TargetSpeed   float64
	VerticalSpeed float64
	Altitude      float64
}
