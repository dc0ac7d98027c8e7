package govega

// ExportOpt bundles document export and text serialization options. The zero
// value exports data inline with sorted keys and compact text.
type ExportOpt struct {
	// OmitData drops data-binding fields from the document.
	OmitData bool
	// InsertionOrder keeps keys in declaration/insertion order instead of
	// sorting them.
	InsertionOrder bool
	// Indent, when non-empty, pretty-prints text output with this indent.
	Indent string
}

// Diag carries non-fatal warnings produced while importing a document.
type Diag interface {
	HasWarnings() bool
	Warnings() []error
}

// DiagCollector is the mutable Diag filled during import. Every warning is
// also logged at warn level through Logger.
type DiagCollector struct{ ws []error }

// Warn records a warning.
func (d *DiagCollector) Warn(err error) {
	if d == nil || err == nil {
		return
	}
	d.ws = append(d.ws, err)
	Logger().Warn(err.Error())
}

func (d *DiagCollector) HasWarnings() bool { return d != nil && len(d.ws) > 0 }

func (d *DiagCollector) Warnings() []error {
	if d == nil {
		return nil
	}
	return append([]error(nil), d.ws...)
}
