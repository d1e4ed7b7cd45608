// Package syntax provides the minimal tree-node contract the analysis
// engine consumes. Hosts lower their own concrete syntax tree into this
// representation; the engine never looks at anything else.
package syntax

// Kind identifies the grammatical category of a node.
type Kind string

const (
	KindSourceFile Kind = "source_file"
	KindFunction   Kind = "function"
	KindClass      Kind = "class"
	KindProperty   Kind = "property"
	KindParameter  Kind = "parameter"
	KindAnnotation Kind = "annotation"
	KindSupertype  Kind = "supertype"
	KindCall       Kind = "call"
	KindLambda     Kind = "lambda"
	KindTry        Kind = "try"
	KindCatch      Kind = "catch"
	KindFinally    Kind = "finally"
	KindLoop       Kind = "loop"
	KindThrow      Kind = "throw"
	KindBlock      Kind = "block"
	KindIdentifier Kind = "identifier"
	KindOther      Kind = "other"
)

// Role describes the position a node occupies inside its parent.
type Role string

const (
	RoleNone           Role = ""
	RoleReceiver       Role = "receiver"
	RoleArgument       Role = "argument"
	RoleTrailingLambda Role = "trailing_lambda"
	RoleBody           Role = "body"
	RoleTryBlock       Role = "try_block"
	RoleCatchClause    Role = "catch_clause"
	RoleFinallyBlock   Role = "finally_block"
	RoleInitializer    Role = "initializer"
	RoleSupertype      Role = "supertype"
	RoleAnnotation     Role = "annotation"
	RoleParameter      Role = "parameter"
	RoleCondition      Role = "condition"
	RoleDeclaration    Role = "declaration"
	RoleStatement      Role = "statement"
)

// Flag carries boolean attributes that do not warrant their own node.
type Flag uint8

const (
	// FlagSuspend marks a function or lambda declared with the suspend modifier.
	FlagSuspend Flag = 1 << iota
)
