package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// Component and modal identifiers. CustomIDs coming back from the
// platform are decoded exactly once, into a ComponentAction, before any
// handler runs.
const (
	VerifyButtonID  = "verify_button"
	VerifyModalID   = "verification_modal"
	nicknameInputID = "nickname_input"

	catalogPrevPrefix = "loadout_prev_"
	catalogNextPrefix = "loadout_next_"
)

type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionVerifyStart
	ActionCatalogPrev
	ActionCatalogNext
)

// ComponentAction is the decoded form of a button customID. For catalog
// navigation, Page carries the page the control was rendered on, not the
// target page.
type ComponentAction struct {
	Kind ActionKind
	Page int
}

// ParseComponentID decodes a raw customID into a typed action.
func ParseComponentID(id string) (ComponentAction, bool) {
	switch {
	case id == VerifyButtonID:
		return ComponentAction{Kind: ActionVerifyStart}, true

	case strings.HasPrefix(id, catalogPrevPrefix):
		page, err := strconv.Atoi(strings.TrimPrefix(id, catalogPrevPrefix))
		if err != nil {
			return ComponentAction{}, false
		}
		return ComponentAction{Kind: ActionCatalogPrev, Page: page}, true

	case strings.HasPrefix(id, catalogNextPrefix):
		page, err := strconv.Atoi(strings.TrimPrefix(id, catalogNextPrefix))
		if err != nil {
			return ComponentAction{}, false
		}
		return ComponentAction{Kind: ActionCatalogNext, Page: page}, true
	}

	return ComponentAction{}, false
}

func catalogPrevID(page int) string {
	return fmt.Sprintf("%s%d", catalogPrevPrefix, page)
}

func catalogNextID(page int) string {
	return fmt.Sprintf("%s%d", catalogNextPrefix, page)
}
