package core

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Parser runs the nine-stage pipeline against a RawTransaction. It carries a
// logger and is otherwise stateless; a single Parser is safe for concurrent
// use across goroutines since ParseTransaction touches no shared state.
type Parser struct {
	Log *logrus.Logger
}

// NewParser constructs a Parser with a logrus logger following the
// project's default field conventions.
func NewParser(log *logrus.Logger) *Parser {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Parser{Log: log}
}

// ParseTransaction runs the full pipeline and returns a Success,
// Split, or Erase Result. It never panics on ordinary rejections; panics
// are reserved for invariant violations a correct caller cannot trigger.
func (p *Parser) ParseTransaction(raw RawTransaction) Result {
	traceID := uuid.New().String()
	log := p.Log.WithField("trace_id", traceID).WithField("signature", raw.Signature)

	changes := normalizeSOLVariants(raw.BalanceChanges)

	changes, rentFiltered := filterRentRefunds(changes)
	log.WithField("rent_refunds_filtered", rentFiltered).Debug("rent filter complete")

	meta := Metadata{RentRefundsFiltered: rentFiltered, Protocol: raw.Protocol}

	var (
		swapper    string
		confidence int
		entryAsset AssetDelta
		exitAsset  AssetDelta
		erased     *EraseError
	)
	// recoverable is set only when swapper identification or asset
	// collection erased; those are the erasures hybrid recovery may undo.
	var recoverable bool

	swapRes := identifySwapper(changes, raw.TransactionMeta)
	dustFiltered := filterDust(changes)

	if !swapRes.OK() {
		erased = &EraseError{Reason: swapRes.Reason}
		recoverable = true
	} else {
		swapper, confidence = swapRes.Swapper, swapRes.Confidence

		var collapsed bool
		entryAsset, exitAsset, collapsed, erased = collectAssetDeltas(dustFiltered, swapper)
		recoverable = erased != nil
		if erased == nil {
			meta.IntermediateAssetsCollapsed = collapsed

			signs := validateSigns(entryAsset, exitAsset)
			if !signs.Valid {
				erased = &EraseError{Reason: signs.Reason}
			} else {
				econ := validateSwapperHasDelta([]AssetDelta{entryAsset, exitAsset})
				if !econ.Valid {
					erased = &EraseError{Reason: econ.Reason}
				}
			}
		}
	}

	if erased != nil {
		if hEntry, hExit, hSwapper, ok := recoverHybridSwap(dustFiltered, raw.TransactionMeta); recoverable && ok {
			log.WithField("erase_reason", erased.Reason).Warn("recovered swap via hybrid fallback")
			entryAsset, exitAsset = hEntry, hExit
			swapper, confidence = hSwapper, hybridRecoveryConfidence
			erased = nil
		} else {
			log.WithField("reason", erased.Reason).Debug("rejected before transfer/core detection")
			return erase(erased.Reason)
		}
	}

	detection := detectTransferOrCoreOnly(entryAsset, exitAsset, raw.TransactionMeta)
	if detection.Reject {
		log.WithField("reason", detection.Reason).Debug("rejected by transfer/core detector")
		return erase(detection.Reason)
	}

	entryAsset, exitAsset, splitRequired := detectSplitRequired([]AssetDelta{entryAsset, exitAsset})

	return buildResult(raw, swapper, confidence, entryAsset, exitAsset, splitRequired, meta)
}
