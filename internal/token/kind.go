package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is a basic or extended (\...\) identifier.
	Ident
	// AbstractLit is a decimal or based numeric literal.
	AbstractLit
	// CharLit is a character literal such as '0'.
	CharLit
	// StringLit is a string literal.
	StringLit
	// BitStringLit is a bit string literal such as x"FF".
	BitStringLit

	keywordsBegin
	KwAbs               // abs
	KwAccess            // access
	KwAfter             // after
	KwAlias             // alias
	KwAll               // all
	KwAnd               // and
	KwArchitecture      // architecture
	KwArray             // array
	KwAssert            // assert
	KwAssume            // assume
	KwAssumeGuarantee   // assume_guarantee
	KwAttribute         // attribute
	KwBegin             // begin
	KwBlock             // block
	KwBody              // body
	KwBuffer            // buffer
	KwBus               // bus
	KwCase              // case
	KwComponent         // component
	KwConfiguration     // configuration
	KwConstant          // constant
	KwContext           // context
	KwCover             // cover
	KwDefault           // default
	KwDisconnect        // disconnect
	KwDownto            // downto
	KwElse              // else
	KwElsif             // elsif
	KwEnd               // end
	KwEntity            // entity
	KwExit              // exit
	KwFairness          // fairness
	KwFile              // file
	KwFor               // for
	KwForce             // force
	KwFunction          // function
	KwGenerate          // generate
	KwGeneric           // generic
	KwGroup             // group
	KwGuarded           // guarded
	KwIf                // if
	KwImpure            // impure
	KwIn                // in
	KwInertial          // inertial
	KwInout             // inout
	KwIs                // is
	KwLabel             // label
	KwLibrary           // library
	KwLinkage           // linkage
	KwLiteral           // literal
	KwLoop              // loop
	KwMap               // map
	KwMod               // mod
	KwNand              // nand
	KwNew               // new
	KwNext              // next
	KwNor               // nor
	KwNot               // not
	KwNull              // null
	KwOf                // of
	KwOn                // on
	KwOpen              // open
	KwOr                // or
	KwOthers            // others
	KwOut               // out
	KwPackage           // package
	KwParameter         // parameter
	KwPort              // port
	KwPostponed         // postponed
	KwProcedure         // procedure
	KwProcess           // process
	KwProperty          // property
	KwProtected         // protected
	KwPure              // pure
	KwRange             // range
	KwRecord            // record
	KwRegister          // register
	KwReject            // reject
	KwRelease           // release
	KwRem               // rem
	KwReport            // report
	KwRestrict          // restrict
	KwRestrictGuarantee // restrict_guarantee
	KwReturn            // return
	KwRol               // rol
	KwRor               // ror
	KwSelect            // select
	KwSequence          // sequence
	KwSeverity          // severity
	KwShared            // shared
	KwSignal            // signal
	KwSla               // sla
	KwSll               // sll
	KwSra               // sra
	KwSrl               // srl
	KwStrong            // strong
	KwSubtype           // subtype
	KwThen              // then
	KwTo                // to
	KwTransport         // transport
	KwType              // type
	KwUnaffected        // unaffected
	KwUnits             // units
	KwUntil             // until
	KwUse               // use
	KwVariable          // variable
	KwVmode             // vmode
	KwVprop             // vprop
	KwVunit             // vunit
	KwWait              // wait
	KwWhen              // when
	KwWhile             // while
	KwWith              // with
	KwXnor              // xnor
	KwXor               // xor
	keywordsEnd

	Amp        // &
	Tick       // '
	LParen     // (
	RParen     // )
	Star       // *
	Plus       // +
	Comma      // ,
	Minus      // -
	Dot        // .
	Slash      // /
	Colon      // :
	Semicolon  // ;
	Lt         // <
	Eq         // =
	Gt         // >
	Bar        // |
	LBracket   // [
	RBracket   // ]
	Question   // ?
	At         // @
	Caret      // ^
	Backquote  // `
	Arrow      // =>
	DoubleStar // **
	ColonEq    // :=
	SlashEq    // /=
	GtEq       // >=
	LtEq       // <=
	Box        // <>
	QueQue     // ??
	QueEq      // ?=
	QueSlashEq // ?/=
	QueLt      // ?<
	QueLtEq    // ?<=
	QueGt      // ?>
	QueGtEq    // ?>=
	LtLt       // <<
	GtGt       // >>
)

var kindNames = [...]string{
	Invalid:             "Invalid",
	EOF:                 "EOF",
	Ident:               "Ident",
	AbstractLit:         "AbstractLit",
	CharLit:             "CharLit",
	StringLit:           "StringLit",
	BitStringLit:        "BitStringLit",
	KwAbs:               "abs",
	KwAccess:            "access",
	KwAfter:             "after",
	KwAlias:             "alias",
	KwAll:               "all",
	KwAnd:               "and",
	KwArchitecture:      "architecture",
	KwArray:             "array",
	KwAssert:            "assert",
	KwAssume:            "assume",
	KwAssumeGuarantee:   "assume_guarantee",
	KwAttribute:         "attribute",
	KwBegin:             "begin",
	KwBlock:             "block",
	KwBody:              "body",
	KwBuffer:            "buffer",
	KwBus:               "bus",
	KwCase:              "case",
	KwComponent:         "component",
	KwConfiguration:     "configuration",
	KwConstant:          "constant",
	KwContext:           "context",
	KwCover:             "cover",
	KwDefault:           "default",
	KwDisconnect:        "disconnect",
	KwDownto:            "downto",
	KwElse:              "else",
	KwElsif:             "elsif",
	KwEnd:               "end",
	KwEntity:            "entity",
	KwExit:              "exit",
	KwFairness:          "fairness",
	KwFile:              "file",
	KwFor:               "for",
	KwForce:             "force",
	KwFunction:          "function",
	KwGenerate:          "generate",
	KwGeneric:           "generic",
	KwGroup:             "group",
	KwGuarded:           "guarded",
	KwIf:                "if",
	KwImpure:            "impure",
	KwIn:                "in",
	KwInertial:          "inertial",
	KwInout:             "inout",
	KwIs:                "is",
	KwLabel:             "label",
	KwLibrary:           "library",
	KwLinkage:           "linkage",
	KwLiteral:           "literal",
	KwLoop:              "loop",
	KwMap:               "map",
	KwMod:               "mod",
	KwNand:              "nand",
	KwNew:               "new",
	KwNext:              "next",
	KwNor:               "nor",
	KwNot:               "not",
	KwNull:              "null",
	KwOf:                "of",
	KwOn:                "on",
	KwOpen:              "open",
	KwOr:                "or",
	KwOthers:            "others",
	KwOut:               "out",
	KwPackage:           "package",
	KwParameter:         "parameter",
	KwPort:              "port",
	KwPostponed:         "postponed",
	KwProcedure:         "procedure",
	KwProcess:           "process",
	KwProperty:          "property",
	KwProtected:         "protected",
	KwPure:              "pure",
	KwRange:             "range",
	KwRecord:            "record",
	KwRegister:          "register",
	KwReject:            "reject",
	KwRelease:           "release",
	KwRem:               "rem",
	KwReport:            "report",
	KwRestrict:          "restrict",
	KwRestrictGuarantee: "restrict_guarantee",
	KwReturn:            "return",
	KwRol:               "rol",
	KwRor:               "ror",
	KwSelect:            "select",
	KwSequence:          "sequence",
	KwSeverity:          "severity",
	KwShared:            "shared",
	KwSignal:            "signal",
	KwSla:               "sla",
	KwSll:               "sll",
	KwSra:               "sra",
	KwSrl:               "srl",
	KwStrong:            "strong",
	KwSubtype:           "subtype",
	KwThen:              "then",
	KwTo:                "to",
	KwTransport:         "transport",
	KwType:              "type",
	KwUnaffected:        "unaffected",
	KwUnits:             "units",
	KwUntil:             "until",
	KwUse:               "use",
	KwVariable:          "variable",
	KwVmode:             "vmode",
	KwVprop:             "vprop",
	KwVunit:             "vunit",
	KwWait:              "wait",
	KwWhen:              "when",
	KwWhile:             "while",
	KwWith:              "with",
	KwXnor:              "xnor",
	KwXor:               "xor",
	Amp:                 "&",
	Tick:                "'",
	LParen:              "(",
	RParen:              ")",
	Star:                "*",
	Plus:                "+",
	Comma:               ",",
	Minus:               "-",
	Dot:                 ".",
	Slash:               "/",
	Colon:               ":",
	Semicolon:           ";",
	Lt:                  "<",
	Eq:                  "=",
	Gt:                  ">",
	Bar:                 "|",
	LBracket:            "[",
	RBracket:            "]",
	Question:            "?",
	At:                  "@",
	Caret:               "^",
	Backquote:           "`",
	Arrow:               "=>",
	DoubleStar:          "**",
	ColonEq:             ":=",
	SlashEq:             "/=",
	GtEq:                ">=",
	LtEq:                "<=",
	Box:                 "<>",
	QueQue:              "??",
	QueEq:               "?=",
	QueSlashEq:          "?/=",
	QueLt:               "?<",
	QueLtEq:             "?<=",
	QueGt:               "?>",
	QueGtEq:             "?>=",
	LtLt:                "<<",
	GtGt:                ">>",
}

// String returns the keyword or delimiter spelling, or the kind name for
// identifiers, literals and EOF.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + itoa(int(k)) + ")"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k > keywordsBegin && k < keywordsEnd }

// IsLiteral reports whether k is a numeric, character, string or bit string literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case AbstractLit, CharLit, StringLit, BitStringLit:
		return true
	default:
		return false
	}
}

// IsDelimiter reports whether k is punctuation or an operator symbol.
func (k Kind) IsDelimiter() bool { return k > keywordsEnd }

// IsOperatorWord reports whether k is a keyword used as a logical,
// arithmetic or shift operator.
func (k Kind) IsOperatorWord() bool {
	switch k {
	case KwAnd, KwOr, KwNand, KwNor, KwXor, KwXnor, KwNot, KwAbs, KwMod, KwRem,
		KwSll, KwSrl, KwSla, KwSra, KwRol, KwRor:
		return true
	default:
		return false
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
