package xmapping

import (
	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xlog"
)

// ProcessorBuilder constructs Processor instances (Builder pattern).
type ProcessorBuilder struct {
	mapperAlias string
	mapperCfg   map[string]any
	mapperInst  Mapper

	codecName string
	codecInst Codec

	middlewares []Middleware
	observers   []Observer
	logger      *xlog.Logger
	clock       xclock.Clock
}

// NewProcessorBuilder returns a new builder with sensible defaults.
func NewProcessorBuilder() *ProcessorBuilder {
	return &ProcessorBuilder{
		codecName: "json",
	}
}

// WithMapper selects a registered mapper by alias.
func (pb *ProcessorBuilder) WithMapper(alias string, cfg map[string]any) *ProcessorBuilder {
	pb.mapperAlias = alias
	pb.mapperCfg = cfg
	return pb
}

// WithMapperInstance accepts a ready Mapper instance.
func (pb *ProcessorBuilder) WithMapperInstance(m Mapper) *ProcessorBuilder {
	pb.mapperInst = m
	return pb
}

func (pb *ProcessorBuilder) WithCodec(name string) *ProcessorBuilder {
	pb.codecName = name
	return pb
}

// WithCodecInstance accepts a ready Codec instance.
func (pb *ProcessorBuilder) WithCodecInstance(c Codec) *ProcessorBuilder {
	pb.codecInst = c
	return pb
}

func (pb *ProcessorBuilder) WithMiddleware(mw ...Middleware) *ProcessorBuilder {
	if len(mw) == 0 {
		return pb
	}
	pb.middlewares = append(pb.middlewares, mw...)
	return pb
}

func (pb *ProcessorBuilder) WithObserver(obs ...Observer) *ProcessorBuilder {
	for _, o := range obs {
		if o != nil {
			pb.observers = append(pb.observers, o)
		}
	}
	return pb
}

func (pb *ProcessorBuilder) WithLogger(l *xlog.Logger) *ProcessorBuilder {
	pb.logger = l
	return pb
}

func (pb *ProcessorBuilder) WithClock(c xclock.Clock) *ProcessorBuilder {
	pb.clock = c
	return pb
}

func (pb *ProcessorBuilder) Build() (*Processor, error) {
	var m Mapper
	var err error

	switch {
	case pb.mapperInst != nil:
		m = pb.mapperInst
	case pb.mapperAlias != "":
		m, err = NewMapper(pb.mapperAlias, pb.mapperCfg)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrNoMapperConfigured
	}

	var cd Codec
	if pb.codecInst != nil {
		cd = pb.codecInst
	} else {
		cd, err = NewCodec(pb.codecName)
		if err != nil {
			return nil, err
		}
	}

	clk := pb.clock
	if clk == nil {
		clk = xclock.Default()
	}
	lg := pb.logger
	if lg == nil {
		lg = xlog.Default()
	}

	p := &Processor{
		mapper:  m,
		codec:   cd,
		clock:   clk,
		logger:  lg,
		metrics: &processorMetrics{},
	}

	// Recovery wraps the mapper first so user middlewares see panics as errors.
	base := RecoveryMiddleware()(p.invoke)
	p.handler = Chain(base, pb.middlewares...)

	if bl, ok := m.(ContentTypeBlocklister); ok {
		for _, ct := range bl.ContentTypeBlocklist() {
			if n := normalizeContentType(ct); n != "" {
				if p.blocklist == nil {
					p.blocklist = make(map[string]struct{})
				}
				p.blocklist[n] = struct{}{}
			}
		}
	}

	hasLoggingObserver := false
	for _, o := range pb.observers {
		if _, ok := o.(LoggingObserver); ok {
			hasLoggingObserver = true
			break
		}
	}
	if !hasLoggingObserver {
		p.AddObserver(LoggingObserver{Logger: lg})
	}
	for _, o := range pb.observers {
		p.AddObserver(o)
	}

	return p, nil
}

// New constructs a Processor via Builder.
func New(init func(pb *ProcessorBuilder)) (*Processor, error) {
	pb := NewProcessorBuilder()
	if init != nil {
		init(pb)
	}
	return pb.Build()
}
