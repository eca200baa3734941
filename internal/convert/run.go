package convert

import (
	"fmt"
	"time"
)

const (
	DefaultCurrency        = "BDT"
	DefaultImportTagPrefix = "notion-import"
)

// Options are the knobs of a conversion that do not come from the source tables.
type Options struct {
	Currency        string
	ImportTagPrefix string
	// WalletBrands are lower-case tokens that mark an account as a mobile wallet.
	WalletBrands []string
}

var defaultWalletBrands = []string{"bkash"}

func (o Options) withDefaults() Options {
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
	if o.ImportTagPrefix == "" {
		o.ImportTagPrefix = DefaultImportTagPrefix
	}
	if len(o.WalletBrands) == 0 {
		o.WalletBrands = defaultWalletBrands
	}
	return o
}

// RunContext is the temporal anchor shared by every builder of one run.
type RunContext struct {
	TargetMonth string
	Timestamp   string
	ImportTag   string
}

// NewRunContext stamps a run for targetMonth at wall-clock time now.
func NewRunContext(targetMonth, tagPrefix string, now time.Time) RunContext {
	return RunContext{
		TargetMonth: targetMonth,
		Timestamp:   FormatInstant(now),
		ImportTag:   fmt.Sprintf("%s-%s", tagPrefix, targetMonth),
	}
}
