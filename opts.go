package asn1kit

/*
opts.go contains the Options type, which carries per-value encoding
instructions (explicit/implicit tag overlays, optionality, automatic
tagging, constraints) either supplied programmatically or parsed from
a struct tag string.
*/

/*
Options implements a simple encapsulator for encoding and decoding
instructions. Instances of this type serve two purposes:

  - Allow a caller to override a value's intrinsic tag/class (e.g. apply
    [ClassApplication] instead of [ClassUniversal], or an explicit
    context tag for a CHOICE member)
  - Act as a portable carrier for the instructions parsed out of an
    "asn1:" struct tag string on a SEQUENCE/SET field
*/
type Options struct {
	Explicit    bool     // if true, wrap the value in an explicit tag
	Optional    bool     // if true, the component may be absent on decode
	OmitEmpty   bool     // whether to omit an empty slice/string on encode
	Set         bool     // if true, encode as SET rather than SEQUENCE
	Indefinite  bool     // indefinite length requested; encoding rejects it
	Automatic   bool     // whether automatic tagging applies to the enclosing collection
	Default     any      // default value, honored by the Default wrapper
	Constraints []string // names of registered Constraint/ConstraintGroup instances

	tag,
	class,
	choiceTag *int
	unidentified []string
}

func defaultOptions() Options {
	class := ClassContextSpecific
	return Options{class: &class}
}

func implicitOptions() Options {
	opts := defaultOptions()
	opts.SetClass(ClassUniversal)
	return opts
}

func addStringConfigValue(dst *[]string, cond bool, val string) {
	if cond {
		*dst = append(*dst, val)
	}
}

func stringifyDefault(d any) string {
	switch v := d.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return bool2str(v)
	case Integer:
		return v.String()
	default:
		return "unidentified-value"
	}
}

/*
String returns the string representation of the receiver instance.
*/
func (r Options) String() string {
	var parts []string

	addStringConfigValue(&parts, r.Tag() >= 0, "tag:"+itoa(r.Tag()))
	addStringConfigValue(&parts, validClass(r.Class()) && r.Class() > 0, lc(ClassNames[r.Class()]))
	if r.choiceTag != nil {
		addStringConfigValue(&parts, true, "choice-tag:"+itoa(*r.choiceTag))
	}
	addStringConfigValue(&parts, r.Explicit, "explicit")
	addStringConfigValue(&parts, r.Optional, "optional")
	addStringConfigValue(&parts, r.Automatic, "automatic")
	addStringConfigValue(&parts, r.Set, "set")

	for _, c := range r.Constraints {
		parts = append(parts, "constraint:"+c)
	}

	addStringConfigValue(&parts, r.OmitEmpty, "omitempty")

	if def := stringifyDefault(r.Default); def != "" {
		parts = append(parts, def)
	}

	return join(parts, ",")
}

/*
NewOptions returns a new instance of [Options] alongside an error
following an attempt to parse the input tag string value.

The syntax mirrors a subset of [encoding/asn1], e.g.:

	asn1:"application"
	asn1:"tag:4,explicit"
*/
func NewOptions(tag string) (Options, error) {
	var (
		opts Options
		err  error
	)

	if tag = trimS(lc(tag)); hasPfx(tag, `asn1:`) {
		tag = trimS(tag[5:])
	}

	if len(tag) == 0 {
		err = errorEmptyASN1Parameters
	} else {
		opts, err = parseOptions(tag)
	}

	return opts, err
}

func parseOptions(tagStr string) (opts Options, err error) {
	opts = implicitOptions()
	tagStr = trim(tagStr, `"`)
	tokens := split(tagStr, ",")

	for _, token := range tokens {
		token = trimS(token)
		switch {
		case hasPfx(token, "tag:"):
			numStr := trimPfx(token, "tag:")
			var tag int
			if tag, err = atoi(numStr); err != nil || tag < 0 {
				err = mkerr("invalid tag number " + numStr)
				return opts, err
			}
			opts.SetTag(tag)
			// A bare "tag:n" with no class keyword implies context-specific.
			opts.SetClass(ClassContextSpecific)
		case token == "explicit" || token == "optional" || token == "automatic" ||
			token == "set" || token == "omitempty" || token == "indefinite":
			opts.setBool(token)
		case hasPfx(token, "constraint:"):
			opts.Constraints = append(opts.Constraints, trimPfx(token, "constraint:"))
		case hasPfx(token, "default:"):
			opts.parseOptionDefault(token)
		default:
			if isClass := opts.writeClassToken(token); !isClass {
				opts.unidentified = append(opts.unidentified, token)
			}
		}
	}

	if len(opts.unidentified) > 0 {
		err = mkerr("Unidentified or superfluous keywords found: " + join(opts.unidentified, ` `))
	}

	return opts, err
}

func (r *Options) setBool(name string) {
	switch name {
	case "explicit":
		r.Explicit = true
	case "automatic":
		r.Automatic = true
	case "omitempty":
		r.OmitEmpty = true
	case "optional":
		r.Optional = true
	case "set":
		r.Set = true
	case "indefinite":
		r.Indefinite = true
	}
}

func (r *Options) writeClassToken(name string) (written bool) {
	switch name {
	case "application":
		r.SetClass(ClassApplication)
		written = true
	case "context-specific", "context specific":
		r.SetClass(ClassContextSpecific)
		written = true
	case "private":
		r.SetClass(ClassPrivate)
		written = true
	}

	return
}

func (r *Options) parseOptionDefault(token string) {
	if r.Default != nil {
		return
	}

	defStr := trimPfx(token, "default:")
	switch {
	case isNumber(defStr):
		r.Default, _ = NewInteger(defStr)
	case isBool(defStr):
		r.Default, _ = pbool(defStr)
	default:
		r.Default = defStr
	}
}

func headerOpts(tlv TLV) Options {
	opts := Options{}
	opts.SetTag(tlv.Tag)
	opts.SetClass(tlv.Class)
	return opts
}

func (r *Options) SetTag(n int) {
	if n >= 0 {
		r.tag = &n
	}
}
func (r Options) HasTag() bool { return r.tag != nil }
func (r Options) Tag() int {
	if r.tag != nil {
		return *r.tag
	}
	return -1 // NO valid default
}

func (r *Options) SetClass(n int) {
	if n >= 0 {
		r.class = &n
	}
}

func (r Options) HasClass() bool { return r.class != nil }
func (r Options) Class() int {
	if r.class != nil {
		return *r.class
	}
	return 0 // UNIVERSAL default
}

func clearChildOpts(o *Options) (c *Options) {
	if o != nil {
		d := *o
		c = &d

		// remove per-field overrides
		c.tag = nil
		c.class = nil
		c.Explicit = false
	}

	return
}
