package xcc

import "strings"

type itemKind uint8

const (
	primaryKind itemKind = iota
	secondaryKind
)

// occurrence is one (item, color) pair contributed by an option. color is
// 0 for primary items and for secondary items mentioned without a color
// label; otherwise it is a dense, per-item color id starting at 1.
type occurrence struct {
	item  int
	color int
}

type option struct {
	items []occurrence
}

// System is the flattened, integer-indexed representation of an exact
// cover with colors instance: the item table, the color tables, and the
// option table. It is built once by New and is immutable thereafter — all
// search mutation happens on a separate *state built from it.
type System struct {
	names      []string   // item display name, indexed [0,P) primary then [P,P+S) secondary
	kinds      []itemKind // parallel to names
	numPrimary int
	colorNames [][]string // colorNames[s] for secondary item s (0-based within the secondary range); colorNames[s][0] is an unused placeholder, labels start at index 1
	options    []option
}

// NumPrimary returns the number of primary items, P.
func (s *System) NumPrimary() int { return s.numPrimary }

// NumItems returns the total number of items, P+S.
func (s *System) NumItems() int { return len(s.names) }

// NumOptions returns the number of options in the instance.
func (s *System) NumOptions() int { return len(s.options) }

// ItemName returns the declared identifier for item i.
func (s *System) ItemName(i int) string { return s.names[i] }

// IsSecondary reports whether item i is a secondary item.
func (s *System) IsSecondary(i int) bool { return s.kinds[i] == secondaryKind }

// New normalizes a list of options into a System. Each option is an
// ordered sequence of tokens; when colored is true a token of the form
// "identifier:color-label" attaches a color label to a secondary item's
// occurrence.
//
// primary and secondary are optional explicit item lists. A nil primary
// is inferred as the union of all non-secondary tokens appearing in
// options, in first-appearance order. A nil secondary means there are no
// secondary items.
func New(options [][]string, primary, secondary []string, colored bool) (*System, error) {
	secSet := make(map[string]bool, len(secondary))
	for _, s := range secondary {
		secSet[s] = true
	}

	priOrder := primary
	if priOrder == nil {
		seen := make(map[string]bool)
		for _, opt := range options {
			for _, tok := range opt {
				id, _, _ := splitToken(tok, colored)
				if secSet[id] || seen[id] {
					continue
				}
				seen[id] = true
				priOrder = append(priOrder, id)
			}
		}
	}

	names := make([]string, 0, len(priOrder)+len(secondary))
	kinds := make([]itemKind, 0, len(priOrder)+len(secondary))
	index := make(map[string]int, len(priOrder)+len(secondary))
	for _, p := range priOrder {
		if _, dup := index[p]; dup {
			continue
		}
		index[p] = len(names)
		names = append(names, p)
		kinds = append(kinds, primaryKind)
	}
	numPrimary := len(names)
	for _, sName := range secondary {
		if _, dup := index[sName]; dup {
			continue
		}
		index[sName] = len(names)
		names = append(names, sName)
		kinds = append(kinds, secondaryKind)
	}

	numSecondary := len(names) - numPrimary
	colorLabelIndex := make([]map[string]int, numSecondary)
	colorNames := make([][]string, numSecondary)
	for i := range colorNames {
		colorLabelIndex[i] = make(map[string]int)
		colorNames[i] = []string{""}
	}

	opts := make([]option, len(options))
	for oi, opt := range options {
		seenInOption := make(map[string]bool, len(opt))
		items := make([]occurrence, 0, len(opt))
		for _, tok := range opt {
			id, colorLabel, hasColor := splitToken(tok, colored)
			if seenInOption[id] {
				return nil, &DuplicateItemError{Option: oi, Item: id}
			}
			seenInOption[id] = true

			itemIdx, ok := index[id]
			if !ok {
				return nil, &UnknownItemError{Option: oi, Token: tok}
			}

			if itemIdx < numPrimary {
				if hasColor {
					return nil, &ColorOnPrimaryError{Option: oi, Item: id}
				}
				items = append(items, occurrence{item: itemIdx, color: 0})
				continue
			}

			color := 0
			if hasColor {
				secLocal := itemIdx - numPrimary
				cid, ok := colorLabelIndex[secLocal][colorLabel]
				if !ok {
					cid = len(colorNames[secLocal])
					colorLabelIndex[secLocal][colorLabel] = cid
					colorNames[secLocal] = append(colorNames[secLocal], colorLabel)
				}
				color = cid
			}
			items = append(items, occurrence{item: itemIdx, color: color})
		}
		opts[oi] = option{items: items}
	}

	// Zero options is a legitimate instance with no solutions, not an
	// input error; only flag a primary item that no option could ever
	// cover when options were actually supplied.
	if len(opts) > 0 {
		covered := make([]bool, numPrimary)
		for _, opt := range opts {
			for _, occ := range opt.items {
				if occ.item < numPrimary {
					covered[occ.item] = true
				}
			}
		}
		for i := 0; i < numPrimary; i++ {
			if !covered[i] {
				return nil, &EmptyPrimaryError{Item: names[i]}
			}
		}
	}

	return &System{
		names:      names,
		kinds:      kinds,
		numPrimary: numPrimary,
		colorNames: colorNames,
		options:    opts,
	}, nil
}

// splitToken separates an "identifier:color-label" token into its
// identifier and color label. When colored is false, or the token has no
// colon, the whole token is the identifier and hasColor is false.
func splitToken(tok string, colored bool) (id, colorLabel string, hasColor bool) {
	if !colored {
		return tok, "", false
	}
	i := strings.IndexByte(tok, ':')
	if i < 0 {
		return tok, "", false
	}
	return tok[:i], tok[i+1:], true
}
