package model

// IndicatorSet holds all computed technical indicators for one price series.
type IndicatorSet struct {
	RSI          float64
	MACD         float64
	MACDSignal   float64
	MACDHist     float64
	BandPosition float64 // -1.0 ~ 1.0, 0 at lower band, 1 at upper
	Volatility   float64 // 0.0 ~ 1.0
	LastPrice    float64
}
