package compiler

/*
tag.go derives each type's TaggingInfo: the outer/inner identifiers
(and, for Choice, the admissible set of them) that header.go's codec
needs to recognize a value on the wire, per CompilerTypes.hpp's
Identifier/TaggingInfo and the derivation rules a resolved schema must
satisfy (§4.9 of the schema this resolver implements).
*/

import "strconv"

// Identifier is a resolved class/tag-number pair. Universal is set
// when the tag comes from the ASN.1 universal class rather than an
// application/context-specific/private prefix.
type Identifier struct {
	ClassOf   Class
	TagNumber int
	Universal bool
}

// Name renders id the way the original compiler's diagnostics do:
// "Id<CLASS, N>" for a prefix tag, "ExplicitId<UniversalTag::X>" for a
// bare universal tag.
func (id Identifier) Name() string {
	if id.Universal {
		return "ExplicitId<UniversalTag::" + strconv.Itoa(id.TagNumber) + ">"
	}
	return "Id<" + classNames[id.ClassOf] + ", " + strconv.Itoa(id.TagNumber) + ">"
}

var classNames = map[Class]string{
	ClassUniversal:       "UNIVERSAL",
	ClassApplication:     "APPLICATION",
	ClassContextSpecific: "CONTEXT_SPECIFIC",
	ClassPrivate:         "PRIVATE",
}

// TaggingInfo is the fully-derived identifier set for a resolved type:
// an optional outer explicit tag, the inner (natural or replaced) tag,
// and — for a Choice with no outer tag — the admissible identifiers of
// every alternative.
type TaggingInfo struct {
	OuterTag        *Identifier
	InnerTag        Identifier
	ChoiceIDs       []Identifier
	IsDefaultTagged bool
}

// Name renders ti the way the original's diagnostics do:
// "DoubleId<outer,inner>" when both an outer and inner tag are
// present, "ChoiceId<...>" when choice alternatives are enumerated,
// otherwise the bare inner tag's name.
func (ti TaggingInfo) Name() string {
	switch {
	case ti.OuterTag != nil:
		return "DoubleId<" + ti.OuterTag.Name() + ", " + ti.InnerTag.Name() + ">"
	case len(ti.ChoiceIDs) > 0:
		s := "ChoiceId<"
		for i, id := range ti.ChoiceIDs {
			if i > 0 {
				s += ", "
			}
			s += id.Name()
		}
		return s + ">"
	default:
		return ti.InnerTag.Name()
	}
}

// OuterTags returns the set of identifiers decode must admit: the
// outer tag if explicit tagging applies, the choice set if ti
// describes an untagged Choice, or else the bare inner tag.
func (ti TaggingInfo) OuterTags() []Identifier {
	if ti.OuterTag != nil {
		return []Identifier{*ti.OuterTag}
	}
	if len(ti.ChoiceIDs) > 0 {
		return ti.ChoiceIDs
	}
	return []Identifier{ti.InnerTag}
}

// builtinUniversalTag returns the fixed universal tag number of a
// non-reference, non-prefixed, non-choice builtin type.
func builtinUniversalTag(t BuiltinType) (int, bool) {
	switch t.(type) {
	case BooleanType:
		return int(TagBoolean), true
	case IntegerType:
		return int(TagInteger), true
	case BitStringType:
		return int(TagBitString), true
	case OctetStringType:
		return int(TagOctetString), true
	case NullType:
		return int(TagNull), true
	case ObjectIdentifierType:
		return int(TagObjectIdentifier), true
	case RelativeOIDType:
		return int(TagRelativeOID), true
	case ObjectDescriptorType:
		return int(TagObjectDescriptor), true
	case ExternalType:
		return int(TagExternal), true
	case RealType:
		return int(TagReal), true
	case EnumeratedType:
		return int(TagEnumerated), true
	case EmbeddedPDVType:
		return int(TagEmbeddedPDV), true
	case SequenceType:
		return int(TagSequence), true
	case SetType:
		return int(TagSet), true
	case SequenceOfType:
		return int(TagSequence), true
	case SetOfType:
		return int(TagSet), true
	case GeneralizedTimeType:
		return int(TagGeneralizedTime), true
	case UTCTimeType:
		return int(TagUTCTime), true
	case DateType:
		return int(TagDate), true
	case TimeOfDayType:
		return int(TagTimeOfDay), true
	case DateTimeType:
		return int(TagDateTime), true
	case DurationType:
		return int(TagDuration), true
	case TimeType:
		return int(TagTime), true
	case StringType:
		return stringUniversalTag(t.(StringType).Kind), true
	default:
		return 0, false
	}
}

func stringUniversalTag(kind CharacterStringType) int {
	switch kind {
	case StrNumeric:
		return int(TagNumericString)
	case StrPrintable:
		return int(TagPrintableString)
	case StrTeletex:
		return int(TagTeletexString)
	case StrVideotex:
		return int(TagVideotexString)
	case StrIA5:
		return int(TagIA5String)
	case StrGraphic:
		return int(TagGraphicString)
	case StrVisible:
		return int(TagVisibleString)
	case StrGeneral:
		return int(TagGeneralString)
	case StrUniversal:
		return int(TagUniversalString)
	case StrBMP:
		return int(TagBMPString)
	case StrCharacter:
		return int(TagCharacterString)
	default:
		return int(TagUTF8String)
	}
}

// ComputeTaggingInfo derives t's TaggingInfo against tree, resolving
// Defined references and chasing Prefixed wrappers as it goes:
//
//   - A builtin primitive gets inner_tag = universal(T), no outer tag,
//     is_default_tagged = true.
//   - A Prefixed type in IMPLICIT mode replaces the inner tag; in
//     EXPLICIT mode sets outer_tag = new, inner_tag = previous.
//     AUTOMATIC is resolved by the caller assigning sequential
//     context-specific tags per component before this is invoked; by
//     the time ComputeTaggingInfo sees a Prefixed type its mode has
//     already been normalized to implicit or explicit.
//   - A Choice's derived identifier is a ChoiceId over every
//     alternative's outer tags.
//   - A Defined type inherits the TaggingInfo of its resolved target.
func ComputeTaggingInfo(tree Asn1Tree, currentModuleReference string, t Type) (TaggingInfo, error) {
	switch v := t.(type) {
	case DefinedType:
		resolved, module, err := ResolveTypeAndModule(tree, currentModuleReference, v)
		if err != nil {
			return TaggingInfo{}, err
		}
		return ComputeTaggingInfo(tree, module.ModuleReference, resolved)

	case PrefixedType:
		inner, err := ComputeTaggingInfo(tree, currentModuleReference, v.TaggedType.Type)
		if err != nil {
			return TaggingInfo{}, err
		}
		newTag := Identifier{ClassOf: v.TaggedType.Tag.Class, TagNumber: v.TaggedType.Tag.TagNumber}

		if v.TaggedType.TaggingMode == ImplicitTagging {
			return TaggingInfo{InnerTag: newTag, IsDefaultTagged: false}, nil
		}
		return TaggingInfo{
			OuterTag:        &newTag,
			InnerTag:        inner.InnerTag,
			IsDefaultTagged: false,
		}, nil

	case ChoiceType:
		ids := make([]Identifier, 0, len(v.Choices))
		for _, alt := range v.Choices {
			altInfo, err := ComputeTaggingInfo(tree, currentModuleReference, alt.Type)
			if err != nil {
				return TaggingInfo{}, err
			}
			ids = append(ids, altInfo.OuterTags()...)
		}
		if err := checkNoOverlap(ids); err != nil {
			return TaggingInfo{}, err
		}
		return TaggingInfo{ChoiceIDs: ids, IsDefaultTagged: true}, nil

	case BuiltinType:
		num, ok := builtinUniversalTag(v)
		if !ok {
			return TaggingInfo{}, errUndefinedReference(currentModuleReference, "unrecognized builtin type")
		}
		return TaggingInfo{
			InnerTag:        Identifier{ClassOf: ClassUniversal, TagNumber: num, Universal: true},
			IsDefaultTagged: true,
		}, nil

	default:
		return TaggingInfo{}, errUndefinedReference(currentModuleReference, "unrecognized type")
	}
}

func checkNoOverlap(ids []Identifier) error {
	seen := make(map[Identifier]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return ErrAmbiguousChoice
		}
		seen[id] = struct{}{}
	}
	return nil
}
