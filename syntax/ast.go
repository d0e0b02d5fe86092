// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// Pos is a source position. Lines and columns are 1-based; columns
// count bytes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Loc is the source extent of a node. It is embedded in every node
// and ignored by Equal.
type Loc struct {
	Start, End Pos
}

// Span returns the extent of the node.
func (l Loc) Span() Loc { return l }

// Node is a syntax tree node. The set of node kinds is closed: every
// implementation is defined in this package and is handled by Reducer.
type Node interface {
	Span() Loc
	node()
}

// Program is either a *Script or a *Module.
type Program interface {
	Node
	program()
}

// ModuleItem is a Statement or an import or export declaration.
type ModuleItem interface {
	Node
	moduleItem()
}

// Statement is a statement or a declaration.
type Statement interface {
	ModuleItem
	statement()
}

// Expression is an expression.
type Expression interface {
	ExpressionSuper
	SpreadElementExpression
	ArrowBody
	TemplatePart
	ForInit
	ExportDefaultBody
	expression()
}

// ExpressionSuper is an Expression or a *Super: the callee of a call
// or the object of a member access.
type ExpressionSuper interface {
	Node
	expressionSuper()
}

// SpreadElementExpression is an Expression or a *SpreadElement.
type SpreadElementExpression interface {
	Node
	spreadElementExpression()
}

// ArrowBody is a *FunctionBody or an Expression.
type ArrowBody interface {
	Node
	arrowBody()
}

// TemplatePart is a *TemplateElement or an Expression.
type TemplatePart interface {
	Node
	templatePart()
}

// Binding is a *BindingIdentifier, *ArrayBinding or *ObjectBinding.
type Binding interface {
	Parameter
	binding()
}

// Parameter is a Binding or a *BindingWithDefault.
type Parameter interface {
	Node
	parameter()
}

// BindingProperty is a *BindingPropertyIdentifier or a
// *BindingPropertyProperty.
type BindingProperty interface {
	Node
	bindingProperty()
}

// AssignmentTarget is a simple assignment target or a destructuring
// pattern in expression position.
type AssignmentTarget interface {
	AssignmentTargetMaybeDefault
	ForInOfLeft
	assignmentTarget()
}

// SimpleAssignmentTarget is an *AssignmentTargetIdentifier or a member
// assignment target.
type SimpleAssignmentTarget interface {
	AssignmentTarget
	simpleAssignmentTarget()
}

// AssignmentTargetMaybeDefault is an AssignmentTarget or an
// *AssignmentTargetWithDefault.
type AssignmentTargetMaybeDefault interface {
	Node
	assignmentTargetMaybeDefault()
}

// AssignmentTargetProperty is an *AssignmentTargetPropertyIdentifier or
// an *AssignmentTargetPropertyProperty.
type AssignmentTargetProperty interface {
	Node
	assignmentTargetProperty()
}

// ObjectProperty is a property of an object literal.
type ObjectProperty interface {
	Node
	objectProperty()
}

// MethodDefinition is a *Method, *Getter or *Setter.
type MethodDefinition interface {
	ObjectProperty
	methodDefinition()
}

// PropertyName is a *StaticPropertyName or a *ComputedPropertyName.
type PropertyName interface {
	Node
	propertyName()
}

// ForInit is the initializer of a for statement: a
// *VariableDeclaration or an Expression.
type ForInit interface {
	Node
	forInit()
}

// ForInOfLeft is the left side of a for-in or for-of statement: a
// *VariableDeclaration or an AssignmentTarget.
type ForInOfLeft interface {
	Node
	forInOfLeft()
}

// ExportDeclaration is the declaration of an *Export: a
// *FunctionDeclaration, *ClassDeclaration or *VariableDeclaration.
type ExportDeclaration interface {
	Node
	exportDeclaration()
}

// ExportDefaultBody is a *FunctionDeclaration, *ClassDeclaration or an
// Expression.
type ExportDefaultBody interface {
	Node
	exportDefaultBody()
}

// DefaultName is the name given to anonymous default-exported
// function and class declarations.
const DefaultName = "*default*"

// Programs.

// Script is a program parsed with the script goal.
type Script struct {
	Loc
	Directives []*Directive
	Statements []Statement
}

// Module is a program parsed with the module goal.
type Module struct {
	Loc
	Directives []*Directive
	Items      []ModuleItem
}

// Directive is a directive prologue entry. RawValue is the source text
// between the quotes.
type Directive struct {
	Loc
	RawValue string
}

// Bindings.

type BindingIdentifier struct {
	Loc
	Name string
}

type BindingWithDefault struct {
	Loc
	Binding Binding
	Init    Expression
}

// ArrayBinding is an array pattern. Elided elements are nil.
type ArrayBinding struct {
	Loc
	Elements []Parameter
	Rest     Binding
}

type ObjectBinding struct {
	Loc
	Properties []BindingProperty
}

type BindingPropertyIdentifier struct {
	Loc
	Binding *BindingIdentifier
	Init    Expression
}

type BindingPropertyProperty struct {
	Loc
	Name    PropertyName
	Binding Parameter
}

// Assignment targets.

type AssignmentTargetIdentifier struct {
	Loc
	Name string
}

type ComputedMemberAssignmentTarget struct {
	Loc
	Object     ExpressionSuper
	Expression Expression
}

type StaticMemberAssignmentTarget struct {
	Loc
	Object   ExpressionSuper
	Property string
}

// ArrayAssignmentTarget is an array pattern in expression position.
// Elided elements are nil.
type ArrayAssignmentTarget struct {
	Loc
	Elements []AssignmentTargetMaybeDefault
	Rest     AssignmentTarget
}

type ObjectAssignmentTarget struct {
	Loc
	Properties []AssignmentTargetProperty
}

type AssignmentTargetWithDefault struct {
	Loc
	Binding AssignmentTarget
	Init    Expression
}

type AssignmentTargetPropertyIdentifier struct {
	Loc
	Binding *AssignmentTargetIdentifier
	Init    Expression
}

type AssignmentTargetPropertyProperty struct {
	Loc
	Name    PropertyName
	Binding AssignmentTargetMaybeDefault
}

// Classes.

type ClassExpression struct {
	Loc
	Name     *BindingIdentifier
	Super    Expression
	Elements []*ClassElement
}

type ClassDeclaration struct {
	Loc
	Name     *BindingIdentifier
	Super    Expression
	Elements []*ClassElement
}

type ClassElement struct {
	Loc
	IsStatic bool
	Method   MethodDefinition
}

// Modules.

// Import is an import declaration without a namespace import. An
// import with neither a default binding nor named imports is a bare
// module import.
type Import struct {
	Loc
	ModuleSpecifier string
	DefaultBinding  *BindingIdentifier
	NamedImports    []*ImportSpecifier
}

type ImportNamespace struct {
	Loc
	ModuleSpecifier  string
	DefaultBinding   *BindingIdentifier
	NamespaceBinding *BindingIdentifier
}

// ImportSpecifier is a named import. Name is empty when the imported
// name is the binding's name.
type ImportSpecifier struct {
	Loc
	Name    string
	Binding *BindingIdentifier
}

type ExportAllFrom struct {
	Loc
	ModuleSpecifier string
}

type ExportFrom struct {
	Loc
	NamedExports    []*ExportFromSpecifier
	ModuleSpecifier string
}

type ExportLocals struct {
	Loc
	NamedExports []*ExportLocalSpecifier
}

// ExportFromSpecifier is a re-exported name. ExportedName is empty
// when the name is exported as is.
type ExportFromSpecifier struct {
	Loc
	Name         string
	ExportedName string
}

// ExportLocalSpecifier is an exported local binding. ExportedName is
// empty when the name is exported as is.
type ExportLocalSpecifier struct {
	Loc
	Name         *IdentifierExpression
	ExportedName string
}

type Export struct {
	Loc
	Declaration ExportDeclaration
}

type ExportDefault struct {
	Loc
	Body ExportDefaultBody
}

// Property definitions.

type Method struct {
	Loc
	IsAsync     bool
	IsGenerator bool
	Name        PropertyName
	Params      *FormalParameters
	Body        *FunctionBody
}

type Getter struct {
	Loc
	Name PropertyName
	Body *FunctionBody
}

type Setter struct {
	Loc
	Name  PropertyName
	Param Parameter
	Body  *FunctionBody
}

type DataProperty struct {
	Loc
	Name       PropertyName
	Expression Expression
}

type ShorthandProperty struct {
	Loc
	Name *IdentifierExpression
}

type ComputedPropertyName struct {
	Loc
	Expression Expression
}

// StaticPropertyName is a property name given as an identifier, string
// or number. Value holds its string value.
type StaticPropertyName struct {
	Loc
	Value string
}

// Literals.

type LiteralBooleanExpression struct {
	Loc
	Value bool
}

// LiteralInfinityExpression is a numeric literal too large to be
// represented as a finite float64.
type LiteralInfinityExpression struct {
	Loc
}

type LiteralNullExpression struct {
	Loc
}

type LiteralNumericExpression struct {
	Loc
	Value float64
}

type LiteralRegExpExpression struct {
	Loc
	Pattern    string
	Global     bool
	IgnoreCase bool
	MultiLine  bool
	DotAll     bool
	Unicode    bool
	Sticky     bool
}

// LiteralStringExpression is a string literal. Value is the string's
// code units encoded as WTF-8, so lone surrogates survive.
type LiteralStringExpression struct {
	Loc
	Value string
}

// Other expressions.

// ArrayExpression is an array literal. Elided elements are nil.
type ArrayExpression struct {
	Loc
	Elements []SpreadElementExpression
}

type ArrowExpression struct {
	Loc
	IsAsync bool
	Params  *FormalParameters
	Body    ArrowBody
}

type AssignmentExpression struct {
	Loc
	Binding    AssignmentTarget
	Expression Expression
}

type BinaryExpression struct {
	Loc
	Left     Expression
	Operator string
	Right    Expression
}

type CallExpression struct {
	Loc
	Callee    ExpressionSuper
	Arguments []SpreadElementExpression
}

type CompoundAssignmentExpression struct {
	Loc
	Binding    SimpleAssignmentTarget
	Operator   string
	Expression Expression
}

type ComputedMemberExpression struct {
	Loc
	Object     ExpressionSuper
	Expression Expression
}

type ConditionalExpression struct {
	Loc
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

type FunctionExpression struct {
	Loc
	IsAsync     bool
	IsGenerator bool
	Name        *BindingIdentifier
	Params      *FormalParameters
	Body        *FunctionBody
}

type IdentifierExpression struct {
	Loc
	Name string
}

type NewExpression struct {
	Loc
	Callee    Expression
	Arguments []SpreadElementExpression
}

type NewTargetExpression struct {
	Loc
}

type ObjectExpression struct {
	Loc
	Properties []ObjectProperty
}

type UnaryExpression struct {
	Loc
	Operator string
	Operand  Expression
}

type StaticMemberExpression struct {
	Loc
	Object   ExpressionSuper
	Property string
}

// TemplateExpression is a template literal. Elements alternate between
// *TemplateElement and Expression, starting and ending with a
// *TemplateElement.
type TemplateExpression struct {
	Loc
	Tag      Expression
	Elements []TemplatePart
}

type ThisExpression struct {
	Loc
}

type UpdateExpression struct {
	Loc
	IsPrefix bool
	Operator string
	Operand  SimpleAssignmentTarget
}

type YieldExpression struct {
	Loc
	Expression Expression
}

type YieldGeneratorExpression struct {
	Loc
	Expression Expression
}

type AwaitExpression struct {
	Loc
	Expression Expression
}

// Other statements.

type BlockStatement struct {
	Loc
	Block *Block
}

type BreakStatement struct {
	Loc
	Label string
}

type ContinueStatement struct {
	Loc
	Label string
}

type DebuggerStatement struct {
	Loc
}

type DoWhileStatement struct {
	Loc
	Body Statement
	Test Expression
}

type EmptyStatement struct {
	Loc
}

type ExpressionStatement struct {
	Loc
	Expression Expression
}

type ForInStatement struct {
	Loc
	Left  ForInOfLeft
	Right Expression
	Body  Statement
}

type ForOfStatement struct {
	Loc
	Left  ForInOfLeft
	Right Expression
	Body  Statement
}

type ForStatement struct {
	Loc
	Init   ForInit
	Test   Expression
	Update Expression
	Body   Statement
}

type IfStatement struct {
	Loc
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

type LabeledStatement struct {
	Loc
	Label string
	Body  Statement
}

type ReturnStatement struct {
	Loc
	Expression Expression
}

type SwitchStatement struct {
	Loc
	Discriminant Expression
	Cases        []*SwitchCase
}

type SwitchStatementWithDefault struct {
	Loc
	Discriminant     Expression
	PreDefaultCases  []*SwitchCase
	DefaultCase      *SwitchDefault
	PostDefaultCases []*SwitchCase
}

type ThrowStatement struct {
	Loc
	Expression Expression
}

type TryCatchStatement struct {
	Loc
	Body        *Block
	CatchClause *CatchClause
}

type TryFinallyStatement struct {
	Loc
	Body        *Block
	CatchClause *CatchClause
	Finalizer   *Block
}

type VariableDeclarationStatement struct {
	Loc
	Declaration *VariableDeclaration
}

type WhileStatement struct {
	Loc
	Test Expression
	Body Statement
}

type WithStatement struct {
	Loc
	Object Expression
	Body   Statement
}

// Other nodes.

type Block struct {
	Loc
	Statements []Statement
}

type CatchClause struct {
	Loc
	Binding Binding
	Body    *Block
}

type FormalParameters struct {
	Loc
	Items []Parameter
	Rest  Binding
}

type FunctionBody struct {
	Loc
	Directives []*Directive
	Statements []Statement
}

type FunctionDeclaration struct {
	Loc
	IsAsync     bool
	IsGenerator bool
	Name        *BindingIdentifier
	Params      *FormalParameters
	Body        *FunctionBody
}

type SpreadElement struct {
	Loc
	Expression Expression
}

type Super struct {
	Loc
}

type SwitchCase struct {
	Loc
	Test       Expression
	Consequent []Statement
}

type SwitchDefault struct {
	Loc
	Consequent []Statement
}

// TemplateElement is a literal span of a template. RawValue is the
// source text of the span.
type TemplateElement struct {
	Loc
	RawValue string
}

// VariableDeclaration declares one or more variables. Kind is "var",
// "let" or "const".
type VariableDeclaration struct {
	Loc
	Kind        string
	Declarators []*VariableDeclarator
}

type VariableDeclarator struct {
	Loc
	Binding Binding
	Init    Expression
}
