package extract

import "github.com/termtrack/termtrack/internal/model"

// keepCandidate decides whether a window of text carries enough evidence to
// become an item of the given type. Notice items need both a deadline signal
// and supporting language; other typed items accept either a deadline signal
// or strong obligation language in contract context. Untyped windows face
// the strictest bar and are rejected outright when they read like statute
// citations.
func (v *Vocabulary) keepCandidate(t model.ItemType, snippet string) bool {
	deadline := v.HasDeadlineSignal(snippet)
	strong := v.HasStrongObligationLanguage(snippet)
	obligation := v.HasObligationLanguage(snippet)
	contract := v.HasContractContext(snippet)

	switch t {
	case model.TypeNotice:
		return deadline && (strong || obligation || contract)
	case model.TypePayment, model.TypeRenewal, model.TypeTermEnd, model.TypeTrialEnd:
		return deadline || (strong && contract)
	case model.TypeOther:
		if deadline && (strong || contract) && !v.LooksLikeRegulatoryReference(snippet) {
			return true
		}
		if strong && obligation && contract && !v.LooksLikeRegulatoryReference(snippet) {
			return true
		}
		return false
	default:
		return deadline || (strong && contract)
	}
}

// confidenceForAbsolute grades an absolute-date candidate by its context
func (v *Vocabulary) confidenceForAbsolute(t model.ItemType, context string) model.Confidence {
	strong := v.HasStrongObligationLanguage(context)
	contract := v.HasContractContext(context)
	if t != model.TypeOther && strong {
		return model.ConfidenceHigh
	}
	if t != model.TypeOther && contract {
		return model.ConfidenceMedium
	}
	if strong && contract {
		return model.ConfidenceMedium
	}
	return model.ConfidenceLow
}

// confidenceForRelative grades a relative-clause candidate. Resolution
// success is the dominant factor: an unanchored clause never rises above low.
func (v *Vocabulary) confidenceForRelative(t model.ItemType, context string, hasAnchor bool) model.Confidence {
	strong := v.HasStrongObligationLanguage(context)
	contract := v.HasContractContext(context)
	if hasAnchor && t != model.TypeOther && strong {
		return model.ConfidenceHigh
	}
	if hasAnchor && t != model.TypeOther {
		return model.ConfidenceMedium
	}
	if hasAnchor && strong && contract {
		return model.ConfidenceMedium
	}
	return model.ConfidenceLow
}
