package altsplice

// Build runs the full pipeline for one alternative example: load the
// external file, validate its shape, munge its callout ids, render the
// fragment.
//
// The sequence number is consumed from counter at the start of the call,
// before validation. A nil counter gets a fresh one scoped to this call;
// share one counter across all alternatives of a primary document to keep
// munged ids unique. Validation failures are recovered locally: they go to
// the diagnostic sink and the returned example simply carries no fragment,
// so the caller skips insertion and keeps processing the primary document.
// Only loader failures (unreadable file, safe-mode path violation) surface
// as errors.
func Build(language, sourcePath string, cfg *InheritedConfig, counter *SequenceCounter, opts ...Option) (*AlternativeExample, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if counter == nil {
		counter = NewSequenceCounter()
	}
	options := applyOptions(opts...)

	example := &AlternativeExample{
		Language:       language,
		SourcePath:     sourcePath,
		SequenceNumber: counter.Next(),
	}

	doc, err := load(sourcePath, cfg, options)
	if err != nil {
		return nil, err
	}

	result := Validate(doc, language)
	if !result.OK {
		options.Sink.Warn(result.Diagnostic.Message, result.Diagnostic.Location)
		return example, nil
	}

	Munge(result.CodeBlock, result.CalloutList, example.SequenceNumber, language)

	text, err := Emit(doc, cfg)
	if err != nil {
		return nil, err
	}
	example.fragment = text
	example.ok = true
	return example, nil
}

// Splice is the convenience form of Build: it returns the pass-through node
// to insert into the primary tree, nil when the alternative was malformed.
func Splice(language, sourcePath string, cfg *InheritedConfig, counter *SequenceCounter, opts ...Option) (*Fragment, error) {
	example, err := Build(language, sourcePath, cfg, counter, opts...)
	if err != nil {
		return nil, err
	}
	return example.Node(), nil
}
