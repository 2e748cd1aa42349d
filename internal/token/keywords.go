package token

import (
	"golang.org/x/text/cases"
)

var keywords = map[string]Kind{
	"abs":                KwAbs,
	"access":             KwAccess,
	"after":              KwAfter,
	"alias":              KwAlias,
	"all":                KwAll,
	"and":                KwAnd,
	"architecture":       KwArchitecture,
	"array":              KwArray,
	"assert":             KwAssert,
	"assume":             KwAssume,
	"assume_guarantee":   KwAssumeGuarantee,
	"attribute":          KwAttribute,
	"begin":              KwBegin,
	"block":              KwBlock,
	"body":               KwBody,
	"buffer":             KwBuffer,
	"bus":                KwBus,
	"case":               KwCase,
	"component":          KwComponent,
	"configuration":      KwConfiguration,
	"constant":           KwConstant,
	"context":            KwContext,
	"cover":              KwCover,
	"default":            KwDefault,
	"disconnect":         KwDisconnect,
	"downto":             KwDownto,
	"else":               KwElse,
	"elsif":              KwElsif,
	"end":                KwEnd,
	"entity":             KwEntity,
	"exit":               KwExit,
	"fairness":           KwFairness,
	"file":               KwFile,
	"for":                KwFor,
	"force":              KwForce,
	"function":           KwFunction,
	"generate":           KwGenerate,
	"generic":            KwGeneric,
	"group":              KwGroup,
	"guarded":            KwGuarded,
	"if":                 KwIf,
	"impure":             KwImpure,
	"in":                 KwIn,
	"inertial":           KwInertial,
	"inout":              KwInout,
	"is":                 KwIs,
	"label":              KwLabel,
	"library":            KwLibrary,
	"linkage":            KwLinkage,
	"literal":            KwLiteral,
	"loop":               KwLoop,
	"map":                KwMap,
	"mod":                KwMod,
	"nand":               KwNand,
	"new":                KwNew,
	"next":               KwNext,
	"nor":                KwNor,
	"not":                KwNot,
	"null":               KwNull,
	"of":                 KwOf,
	"on":                 KwOn,
	"open":               KwOpen,
	"or":                 KwOr,
	"others":             KwOthers,
	"out":                KwOut,
	"package":            KwPackage,
	"parameter":          KwParameter,
	"port":               KwPort,
	"postponed":          KwPostponed,
	"procedure":          KwProcedure,
	"process":            KwProcess,
	"property":           KwProperty,
	"protected":          KwProtected,
	"pure":               KwPure,
	"range":              KwRange,
	"record":             KwRecord,
	"register":           KwRegister,
	"reject":             KwReject,
	"release":            KwRelease,
	"rem":                KwRem,
	"report":             KwReport,
	"restrict":           KwRestrict,
	"restrict_guarantee": KwRestrictGuarantee,
	"return":             KwReturn,
	"rol":                KwRol,
	"ror":                KwRor,
	"select":             KwSelect,
	"sequence":           KwSequence,
	"severity":           KwSeverity,
	"shared":             KwShared,
	"signal":             KwSignal,
	"sla":                KwSla,
	"sll":                KwSll,
	"sra":                KwSra,
	"srl":                KwSrl,
	"strong":             KwStrong,
	"subtype":            KwSubtype,
	"then":               KwThen,
	"to":                 KwTo,
	"transport":          KwTransport,
	"type":               KwType,
	"unaffected":         KwUnaffected,
	"units":              KwUnits,
	"until":              KwUntil,
	"use":                KwUse,
	"variable":           KwVariable,
	"vmode":              KwVmode,
	"vprop":              KwVprop,
	"vunit":              KwVunit,
	"wait":               KwWait,
	"when":               KwWhen,
	"while":              KwWhile,
	"with":               KwWith,
	"xnor":               KwXnor,
	"xor":                KwXor,
}

// LookupKeyword reports whether ident is a reserved word. VHDL keywords are
// case-insensitive, so the lexeme is case-folded before the lookup.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[fold(ident)]
	return k, ok
}

// Fold returns the case-folded form used to compare identifiers.
// Extended identifiers are case-sensitive and returned unchanged.
func Fold(ident string) string {
	if len(ident) > 0 && ident[0] == '\\' {
		return ident
	}
	return fold(ident)
}

func fold(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			// A Caser is stateful; one per call keeps lookups goroutine-safe.
			return cases.Fold().String(s)
		}
	}
	return asciiLower(s)
}

func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
