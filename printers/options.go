package printers

import "github.com/Jordan466/OptionRecords/options"

// display contains common display options shared by all printers
type display struct {
	ShowTimestamp bool
	HideSamples   bool
}

type displayer interface {
	displayOptions() *display
}

// WithTimestamp enables timestamp display in printer output
func WithTimestamp[T any, P interface {
	*T
	displayer
}]() options.Option[T] {
	return func(p *T) {
		P(p).displayOptions().ShowTimestamp = true
	}
}

// WithoutSamples keeps sample values out of printer output
func WithoutSamples[T any, P interface {
	*T
	displayer
}]() options.Option[T] {
	return func(p *T) {
		P(p).displayOptions().HideSamples = true
	}
}
