package formatter

import (
	"github.com/npillmayer/notensatz/core/parameters"
	"github.com/npillmayer/notensatz/core/percent"
)

// Options configure a Formatter. Zero values are replaced by defaults.
type Options struct {
	SoftmaxFactor        float64         // base of the softmax curve
	GlobalSoftmax        bool            // softmax over all contexts instead of per voice
	MaxIterations        int             // cap for the padding convergence loop
	StavePadding         float64         // padding at the start of a stave
	EndPaddingMin        float64         // minimal padding after the last note
	EndPaddingMax        float64         // maximal padding after the last note
	UnalignedNotePadding float64         // used for estimating minimal widths
	TickContextPadding   float64         // padding on either side of a tick context
	TuningAlpha          float64         // damping of Tune
	MaxCompression       percent.Percent // of the target width, per context
}

// OptionsFromRegisters reads formatter options from engraving registers.
func OptionsFromRegisters(regs *parameters.EngravingRegisters) Options {
	return Options{
		SoftmaxFactor:        regs.F(parameters.P_SOFTMAXFACTOR),
		MaxIterations:        regs.N(parameters.P_MAXITERATIONS),
		StavePadding:         regs.F(parameters.P_STAVEPADDING),
		EndPaddingMin:        regs.F(parameters.P_ENDPADDINGMIN),
		EndPaddingMax:        regs.F(parameters.P_ENDPADDINGMAX),
		UnalignedNotePadding: regs.F(parameters.P_UNALIGNEDNOTEPADDING),
		TickContextPadding:   regs.F(parameters.P_TICKCONTEXTPADDING),
		TuningAlpha:          regs.F(parameters.P_TUNINGALPHA),
		MaxCompression:       regs.P(parameters.P_MAXCOMPRESSION),
	}
}

// DefaultOptions returns the options of fresh engraving registers.
func DefaultOptions() Options {
	return OptionsFromRegisters(parameters.NewEngravingRegisters())
}

func (opts Options) withDefaults() Options {
	def := DefaultOptions()
	if opts.SoftmaxFactor <= 0 {
		opts.SoftmaxFactor = def.SoftmaxFactor
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = def.MaxIterations
	}
	if opts.StavePadding == 0 {
		opts.StavePadding = def.StavePadding
	}
	if opts.EndPaddingMin == 0 {
		opts.EndPaddingMin = def.EndPaddingMin
	}
	if opts.EndPaddingMax == 0 {
		opts.EndPaddingMax = def.EndPaddingMax
	}
	if opts.UnalignedNotePadding == 0 {
		opts.UnalignedNotePadding = def.UnalignedNotePadding
	}
	if opts.TickContextPadding == 0 {
		opts.TickContextPadding = def.TickContextPadding
	}
	if opts.TuningAlpha <= 0 {
		opts.TuningAlpha = def.TuningAlpha
	}
	if opts.MaxCompression == 0 {
		opts.MaxCompression = def.MaxCompression
	}
	return opts
}
