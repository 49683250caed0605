package doc

import "fmt"

// ItemKind classifies a declaration. The declaration order of the constants
// is the section order used when grouping a page's contents, so it is part
// of the output contract: do not reorder.
type ItemKind int

const (
	KindModule ItemKind = iota
	KindField
	KindVariant
	KindRequiredMethod
	KindProvidedMethod
	KindMethod
	KindBuiltinType
	KindProtocol
	KindStruct
	KindFunction
	KindUnion
	KindTypeAlias
	KindEnum
	KindMacro
	KindConst
	KindStatic
	KindMixin

	numKinds
)

// kindInfo carries the fixed per-kind policy answers consumed by page
// generation and navigation.
type kindInfo struct {
	name          string
	ownsPage      bool // emitted as a standalone page
	indexed       bool // participates in the search index
	inNav         bool // listed in the sidebar
	listsSiblings bool // its page lists the parent's other children
	showsSource   bool // page shows a "view source" affordance
	hasSignature  bool // page shows a declaration signature
}

var kindTable = [numKinds]kindInfo{
	KindModule:         {"module", true, true, true, true, false, false},
	KindField:          {"field", false, true, false, false, false, true},
	KindVariant:        {"variant", false, true, false, false, false, false},
	KindRequiredMethod: {"required_method", true, true, false, true, false, true},
	KindProvidedMethod: {"provided_method", true, true, false, true, true, true},
	KindMethod:         {"method", true, true, false, true, true, true},
	KindBuiltinType:    {"builtin", true, true, true, true, false, false},
	KindProtocol:       {"protocol", true, true, true, true, true, true},
	KindStruct:         {"struct", true, true, true, true, true, true},
	KindFunction:       {"function", true, true, true, true, true, true},
	KindUnion:          {"union", true, true, true, true, true, true},
	KindTypeAlias:      {"type_alias", true, true, true, true, true, true},
	KindEnum:           {"enum", true, true, true, true, true, false},
	KindMacro:          {"macro", true, true, true, true, true, true},
	KindConst:          {"const", true, true, true, true, true, true},
	KindStatic:         {"static", true, true, true, true, true, true},
	KindMixin:          {"mixin", false, false, false, false, true, false},
}

var kindByName = func() map[string]ItemKind {
	m := make(map[string]ItemKind, numKinds)
	for k := ItemKind(0); k < numKinds; k++ {
		m[kindTable[k].name] = k
	}
	return m
}()

// KindFromString maps a manifest kind string to its ItemKind.
func KindFromString(name string) (ItemKind, error) {
	k, ok := kindByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown item kind %q", name)
	}
	return k, nil
}

func (k ItemKind) valid() bool { return k >= 0 && k < numKinds }

// String returns the manifest name of the kind.
func (k ItemKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindTable[k].name
}

// OwnsPage reports whether items of this kind get a standalone page. Kinds
// that do not (fields, variants, mixins) are rendered on their parent's page
// and linked by anchor.
func (k ItemKind) OwnsPage() bool { return k.valid() && kindTable[k].ownsPage }

// Indexed reports whether items of this kind enter the search index.
func (k ItemKind) Indexed() bool { return k.valid() && kindTable[k].indexed }

// InNav reports whether items of this kind appear in sidebar navigation.
func (k ItemKind) InNav() bool { return k.valid() && kindTable[k].inNav }

// ListsSiblings reports whether the item's page lists its siblings.
func (k ItemKind) ListsSiblings() bool { return k.valid() && kindTable[k].listsSiblings }

// ShowsSource reports whether the item's page offers a jump to source.
func (k ItemKind) ShowsSource() bool { return k.valid() && kindTable[k].showsSource }

// HasSignature reports whether the item's page renders a signature block.
func (k ItemKind) HasSignature() bool { return k.valid() && kindTable[k].hasSignature }
