// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// A Reducer computes a value of type T for every node kind from the
// node and the values already computed for its children. Absent
// optional children are given T's zero value; list children are given
// in order, with the zero value standing in for elisions.
//
// Reducer has one method per node kind, so an implementation fails to
// compile until it handles every kind.
type Reducer[T any] interface {
	ReduceArrayAssignmentTarget(node *ArrayAssignmentTarget, elements []T, rest T) T
	ReduceArrayBinding(node *ArrayBinding, elements []T, rest T) T
	ReduceArrayExpression(node *ArrayExpression, elements []T) T
	ReduceArrowExpression(node *ArrowExpression, params T, body T) T
	ReduceAssignmentExpression(node *AssignmentExpression, binding T, expression T) T
	ReduceAssignmentTargetIdentifier(node *AssignmentTargetIdentifier) T
	ReduceAssignmentTargetPropertyIdentifier(node *AssignmentTargetPropertyIdentifier, binding T, init T) T
	ReduceAssignmentTargetPropertyProperty(node *AssignmentTargetPropertyProperty, name T, binding T) T
	ReduceAssignmentTargetWithDefault(node *AssignmentTargetWithDefault, binding T, init T) T
	ReduceAwaitExpression(node *AwaitExpression, expression T) T
	ReduceBinaryExpression(node *BinaryExpression, left T, right T) T
	ReduceBindingIdentifier(node *BindingIdentifier) T
	ReduceBindingPropertyIdentifier(node *BindingPropertyIdentifier, binding T, init T) T
	ReduceBindingPropertyProperty(node *BindingPropertyProperty, name T, binding T) T
	ReduceBindingWithDefault(node *BindingWithDefault, binding T, init T) T
	ReduceBlock(node *Block, statements []T) T
	ReduceBlockStatement(node *BlockStatement, block T) T
	ReduceBreakStatement(node *BreakStatement) T
	ReduceCallExpression(node *CallExpression, callee T, arguments []T) T
	ReduceCatchClause(node *CatchClause, binding T, body T) T
	ReduceClassDeclaration(node *ClassDeclaration, name T, super_ T, elements []T) T
	ReduceClassElement(node *ClassElement, method T) T
	ReduceClassExpression(node *ClassExpression, name T, super_ T, elements []T) T
	ReduceCompoundAssignmentExpression(node *CompoundAssignmentExpression, binding T, expression T) T
	ReduceComputedMemberAssignmentTarget(node *ComputedMemberAssignmentTarget, object T, expression T) T
	ReduceComputedMemberExpression(node *ComputedMemberExpression, object T, expression T) T
	ReduceComputedPropertyName(node *ComputedPropertyName, expression T) T
	ReduceConditionalExpression(node *ConditionalExpression, test T, consequent T, alternate T) T
	ReduceContinueStatement(node *ContinueStatement) T
	ReduceDataProperty(node *DataProperty, name T, expression T) T
	ReduceDebuggerStatement(node *DebuggerStatement) T
	ReduceDirective(node *Directive) T
	ReduceDoWhileStatement(node *DoWhileStatement, body T, test T) T
	ReduceEmptyStatement(node *EmptyStatement) T
	ReduceExport(node *Export, declaration T) T
	ReduceExportAllFrom(node *ExportAllFrom) T
	ReduceExportDefault(node *ExportDefault, body T) T
	ReduceExportFrom(node *ExportFrom, namedExports []T) T
	ReduceExportFromSpecifier(node *ExportFromSpecifier) T
	ReduceExportLocalSpecifier(node *ExportLocalSpecifier, name T) T
	ReduceExportLocals(node *ExportLocals, namedExports []T) T
	ReduceExpressionStatement(node *ExpressionStatement, expression T) T
	ReduceForInStatement(node *ForInStatement, left T, right T, body T) T
	ReduceForOfStatement(node *ForOfStatement, left T, right T, body T) T
	ReduceForStatement(node *ForStatement, init T, test T, update T, body T) T
	ReduceFormalParameters(node *FormalParameters, items []T, rest T) T
	ReduceFunctionBody(node *FunctionBody, directives []T, statements []T) T
	ReduceFunctionDeclaration(node *FunctionDeclaration, name T, params T, body T) T
	ReduceFunctionExpression(node *FunctionExpression, name T, params T, body T) T
	ReduceGetter(node *Getter, name T, body T) T
	ReduceIdentifierExpression(node *IdentifierExpression) T
	ReduceIfStatement(node *IfStatement, test T, consequent T, alternate T) T
	ReduceImport(node *Import, defaultBinding T, namedImports []T) T
	ReduceImportNamespace(node *ImportNamespace, defaultBinding T, namespaceBinding T) T
	ReduceImportSpecifier(node *ImportSpecifier, binding T) T
	ReduceLabeledStatement(node *LabeledStatement, body T) T
	ReduceLiteralBooleanExpression(node *LiteralBooleanExpression) T
	ReduceLiteralInfinityExpression(node *LiteralInfinityExpression) T
	ReduceLiteralNullExpression(node *LiteralNullExpression) T
	ReduceLiteralNumericExpression(node *LiteralNumericExpression) T
	ReduceLiteralRegExpExpression(node *LiteralRegExpExpression) T
	ReduceLiteralStringExpression(node *LiteralStringExpression) T
	ReduceMethod(node *Method, name T, params T, body T) T
	ReduceModule(node *Module, directives []T, items []T) T
	ReduceNewExpression(node *NewExpression, callee T, arguments []T) T
	ReduceNewTargetExpression(node *NewTargetExpression) T
	ReduceObjectAssignmentTarget(node *ObjectAssignmentTarget, properties []T) T
	ReduceObjectBinding(node *ObjectBinding, properties []T) T
	ReduceObjectExpression(node *ObjectExpression, properties []T) T
	ReduceReturnStatement(node *ReturnStatement, expression T) T
	ReduceScript(node *Script, directives []T, statements []T) T
	ReduceSetter(node *Setter, name T, param T, body T) T
	ReduceShorthandProperty(node *ShorthandProperty, name T) T
	ReduceSpreadElement(node *SpreadElement, expression T) T
	ReduceStaticMemberAssignmentTarget(node *StaticMemberAssignmentTarget, object T) T
	ReduceStaticMemberExpression(node *StaticMemberExpression, object T) T
	ReduceStaticPropertyName(node *StaticPropertyName) T
	ReduceSuper(node *Super) T
	ReduceSwitchCase(node *SwitchCase, test T, consequent []T) T
	ReduceSwitchDefault(node *SwitchDefault, consequent []T) T
	ReduceSwitchStatement(node *SwitchStatement, discriminant T, cases []T) T
	ReduceSwitchStatementWithDefault(node *SwitchStatementWithDefault, discriminant T, preDefaultCases []T, defaultCase T, postDefaultCases []T) T
	ReduceTemplateElement(node *TemplateElement) T
	ReduceTemplateExpression(node *TemplateExpression, tag T, elements []T) T
	ReduceThisExpression(node *ThisExpression) T
	ReduceThrowStatement(node *ThrowStatement, expression T) T
	ReduceTryCatchStatement(node *TryCatchStatement, body T, catchClause T) T
	ReduceTryFinallyStatement(node *TryFinallyStatement, body T, catchClause T, finalizer T) T
	ReduceUnaryExpression(node *UnaryExpression, operand T) T
	ReduceUpdateExpression(node *UpdateExpression, operand T) T
	ReduceVariableDeclaration(node *VariableDeclaration, declarators []T) T
	ReduceVariableDeclarationStatement(node *VariableDeclarationStatement, declaration T) T
	ReduceVariableDeclarator(node *VariableDeclarator, binding T, init T) T
	ReduceWhileStatement(node *WhileStatement, test T, body T) T
	ReduceWithStatement(node *WithStatement, object T, body T) T
	ReduceYieldExpression(node *YieldExpression, expression T) T
	ReduceYieldGeneratorExpression(node *YieldGeneratorExpression, expression T) T
}

// Reduce folds the tree rooted at n with r, children first. A nil n
// reduces to T's zero value.
func Reduce[T any](r Reducer[T], n Node) T {
	switch n := n.(type) {
	case nil:
		var zero T
		return zero
	case *ArrayAssignmentTarget:
		return r.ReduceArrayAssignmentTarget(n, reduceList(r, n.Elements), Reduce(r, Node(n.Rest)))
	case *ArrayBinding:
		return r.ReduceArrayBinding(n, reduceList(r, n.Elements), Reduce(r, Node(n.Rest)))
	case *ArrayExpression:
		return r.ReduceArrayExpression(n, reduceList(r, n.Elements))
	case *ArrowExpression:
		return r.ReduceArrowExpression(n, Reduce(r, Node(n.Params)), Reduce(r, Node(n.Body)))
	case *AssignmentExpression:
		return r.ReduceAssignmentExpression(n, Reduce(r, Node(n.Binding)), Reduce(r, Node(n.Expression)))
	case *AssignmentTargetIdentifier:
		return r.ReduceAssignmentTargetIdentifier(n)
	case *AssignmentTargetPropertyIdentifier:
		return r.ReduceAssignmentTargetPropertyIdentifier(n, Reduce(r, Node(n.Binding)), Reduce(r, Node(n.Init)))
	case *AssignmentTargetPropertyProperty:
		return r.ReduceAssignmentTargetPropertyProperty(n, Reduce(r, Node(n.Name)), Reduce(r, Node(n.Binding)))
	case *AssignmentTargetWithDefault:
		return r.ReduceAssignmentTargetWithDefault(n, Reduce(r, Node(n.Binding)), Reduce(r, Node(n.Init)))
	case *AwaitExpression:
		return r.ReduceAwaitExpression(n, Reduce(r, Node(n.Expression)))
	case *BinaryExpression:
		return r.ReduceBinaryExpression(n, Reduce(r, Node(n.Left)), Reduce(r, Node(n.Right)))
	case *BindingIdentifier:
		return r.ReduceBindingIdentifier(n)
	case *BindingPropertyIdentifier:
		return r.ReduceBindingPropertyIdentifier(n, Reduce(r, Node(n.Binding)), Reduce(r, Node(n.Init)))
	case *BindingPropertyProperty:
		return r.ReduceBindingPropertyProperty(n, Reduce(r, Node(n.Name)), Reduce(r, Node(n.Binding)))
	case *BindingWithDefault:
		return r.ReduceBindingWithDefault(n, Reduce(r, Node(n.Binding)), Reduce(r, Node(n.Init)))
	case *Block:
		return r.ReduceBlock(n, reduceList(r, n.Statements))
	case *BlockStatement:
		return r.ReduceBlockStatement(n, Reduce(r, Node(n.Block)))
	case *BreakStatement:
		return r.ReduceBreakStatement(n)
	case *CallExpression:
		return r.ReduceCallExpression(n, Reduce(r, Node(n.Callee)), reduceList(r, n.Arguments))
	case *CatchClause:
		return r.ReduceCatchClause(n, Reduce(r, Node(n.Binding)), Reduce(r, Node(n.Body)))
	case *ClassDeclaration:
		return r.ReduceClassDeclaration(n, Reduce(r, Node(n.Name)), Reduce(r, Node(n.Super)), reduceList(r, n.Elements))
	case *ClassElement:
		return r.ReduceClassElement(n, Reduce(r, Node(n.Method)))
	case *ClassExpression:
		var name T
		if n.Name != nil {
			name = Reduce(r, Node(n.Name))
		}
		return r.ReduceClassExpression(n, name, Reduce(r, Node(n.Super)), reduceList(r, n.Elements))
	case *CompoundAssignmentExpression:
		return r.ReduceCompoundAssignmentExpression(n, Reduce(r, Node(n.Binding)), Reduce(r, Node(n.Expression)))
	case *ComputedMemberAssignmentTarget:
		return r.ReduceComputedMemberAssignmentTarget(n, Reduce(r, Node(n.Object)), Reduce(r, Node(n.Expression)))
	case *ComputedMemberExpression:
		return r.ReduceComputedMemberExpression(n, Reduce(r, Node(n.Object)), Reduce(r, Node(n.Expression)))
	case *ComputedPropertyName:
		return r.ReduceComputedPropertyName(n, Reduce(r, Node(n.Expression)))
	case *ConditionalExpression:
		return r.ReduceConditionalExpression(n, Reduce(r, Node(n.Test)), Reduce(r, Node(n.Consequent)), Reduce(r, Node(n.Alternate)))
	case *ContinueStatement:
		return r.ReduceContinueStatement(n)
	case *DataProperty:
		return r.ReduceDataProperty(n, Reduce(r, Node(n.Name)), Reduce(r, Node(n.Expression)))
	case *DebuggerStatement:
		return r.ReduceDebuggerStatement(n)
	case *Directive:
		return r.ReduceDirective(n)
	case *DoWhileStatement:
		return r.ReduceDoWhileStatement(n, Reduce(r, Node(n.Body)), Reduce(r, Node(n.Test)))
	case *EmptyStatement:
		return r.ReduceEmptyStatement(n)
	case *Export:
		return r.ReduceExport(n, Reduce(r, Node(n.Declaration)))
	case *ExportAllFrom:
		return r.ReduceExportAllFrom(n)
	case *ExportDefault:
		return r.ReduceExportDefault(n, Reduce(r, Node(n.Body)))
	case *ExportFrom:
		return r.ReduceExportFrom(n, reduceList(r, n.NamedExports))
	case *ExportFromSpecifier:
		return r.ReduceExportFromSpecifier(n)
	case *ExportLocalSpecifier:
		return r.ReduceExportLocalSpecifier(n, Reduce(r, Node(n.Name)))
	case *ExportLocals:
		return r.ReduceExportLocals(n, reduceList(r, n.NamedExports))
	case *ExpressionStatement:
		return r.ReduceExpressionStatement(n, Reduce(r, Node(n.Expression)))
	case *ForInStatement:
		return r.ReduceForInStatement(n, Reduce(r, Node(n.Left)), Reduce(r, Node(n.Right)), Reduce(r, Node(n.Body)))
	case *ForOfStatement:
		return r.ReduceForOfStatement(n, Reduce(r, Node(n.Left)), Reduce(r, Node(n.Right)), Reduce(r, Node(n.Body)))
	case *ForStatement:
		return r.ReduceForStatement(n, Reduce(r, Node(n.Init)), Reduce(r, Node(n.Test)), Reduce(r, Node(n.Update)), Reduce(r, Node(n.Body)))
	case *FormalParameters:
		return r.ReduceFormalParameters(n, reduceList(r, n.Items), Reduce(r, Node(n.Rest)))
	case *FunctionBody:
		return r.ReduceFunctionBody(n, reduceList(r, n.Directives), reduceList(r, n.Statements))
	case *FunctionDeclaration:
		return r.ReduceFunctionDeclaration(n, Reduce(r, Node(n.Name)), Reduce(r, Node(n.Params)), Reduce(r, Node(n.Body)))
	case *FunctionExpression:
		var name T
		if n.Name != nil {
			name = Reduce(r, Node(n.Name))
		}
		return r.ReduceFunctionExpression(n, name, Reduce(r, Node(n.Params)), Reduce(r, Node(n.Body)))
	case *Getter:
		return r.ReduceGetter(n, Reduce(r, Node(n.Name)), Reduce(r, Node(n.Body)))
	case *IdentifierExpression:
		return r.ReduceIdentifierExpression(n)
	case *IfStatement:
		return r.ReduceIfStatement(n, Reduce(r, Node(n.Test)), Reduce(r, Node(n.Consequent)), Reduce(r, Node(n.Alternate)))
	case *Import:
		var defaultBinding T
		if n.DefaultBinding != nil {
			defaultBinding = Reduce(r, Node(n.DefaultBinding))
		}
		return r.ReduceImport(n, defaultBinding, reduceList(r, n.NamedImports))
	case *ImportNamespace:
		var defaultBinding T
		if n.DefaultBinding != nil {
			defaultBinding = Reduce(r, Node(n.DefaultBinding))
		}
		return r.ReduceImportNamespace(n, defaultBinding, Reduce(r, Node(n.NamespaceBinding)))
	case *ImportSpecifier:
		return r.ReduceImportSpecifier(n, Reduce(r, Node(n.Binding)))
	case *LabeledStatement:
		return r.ReduceLabeledStatement(n, Reduce(r, Node(n.Body)))
	case *LiteralBooleanExpression:
		return r.ReduceLiteralBooleanExpression(n)
	case *LiteralInfinityExpression:
		return r.ReduceLiteralInfinityExpression(n)
	case *LiteralNullExpression:
		return r.ReduceLiteralNullExpression(n)
	case *LiteralNumericExpression:
		return r.ReduceLiteralNumericExpression(n)
	case *LiteralRegExpExpression:
		return r.ReduceLiteralRegExpExpression(n)
	case *LiteralStringExpression:
		return r.ReduceLiteralStringExpression(n)
	case *Method:
		return r.ReduceMethod(n, Reduce(r, Node(n.Name)), Reduce(r, Node(n.Params)), Reduce(r, Node(n.Body)))
	case *Module:
		return r.ReduceModule(n, reduceList(r, n.Directives), reduceList(r, n.Items))
	case *NewExpression:
		return r.ReduceNewExpression(n, Reduce(r, Node(n.Callee)), reduceList(r, n.Arguments))
	case *NewTargetExpression:
		return r.ReduceNewTargetExpression(n)
	case *ObjectAssignmentTarget:
		return r.ReduceObjectAssignmentTarget(n, reduceList(r, n.Properties))
	case *ObjectBinding:
		return r.ReduceObjectBinding(n, reduceList(r, n.Properties))
	case *ObjectExpression:
		return r.ReduceObjectExpression(n, reduceList(r, n.Properties))
	case *ReturnStatement:
		return r.ReduceReturnStatement(n, Reduce(r, Node(n.Expression)))
	case *Script:
		return r.ReduceScript(n, reduceList(r, n.Directives), reduceList(r, n.Statements))
	case *Setter:
		return r.ReduceSetter(n, Reduce(r, Node(n.Name)), Reduce(r, Node(n.Param)), Reduce(r, Node(n.Body)))
	case *ShorthandProperty:
		return r.ReduceShorthandProperty(n, Reduce(r, Node(n.Name)))
	case *SpreadElement:
		return r.ReduceSpreadElement(n, Reduce(r, Node(n.Expression)))
	case *StaticMemberAssignmentTarget:
		return r.ReduceStaticMemberAssignmentTarget(n, Reduce(r, Node(n.Object)))
	case *StaticMemberExpression:
		return r.ReduceStaticMemberExpression(n, Reduce(r, Node(n.Object)))
	case *StaticPropertyName:
		return r.ReduceStaticPropertyName(n)
	case *Super:
		return r.ReduceSuper(n)
	case *SwitchCase:
		return r.ReduceSwitchCase(n, Reduce(r, Node(n.Test)), reduceList(r, n.Consequent))
	case *SwitchDefault:
		return r.ReduceSwitchDefault(n, reduceList(r, n.Consequent))
	case *SwitchStatement:
		return r.ReduceSwitchStatement(n, Reduce(r, Node(n.Discriminant)), reduceList(r, n.Cases))
	case *SwitchStatementWithDefault:
		return r.ReduceSwitchStatementWithDefault(n, Reduce(r, Node(n.Discriminant)), reduceList(r, n.PreDefaultCases), Reduce(r, Node(n.DefaultCase)), reduceList(r, n.PostDefaultCases))
	case *TemplateElement:
		return r.ReduceTemplateElement(n)
	case *TemplateExpression:
		return r.ReduceTemplateExpression(n, Reduce(r, Node(n.Tag)), reduceList(r, n.Elements))
	case *ThisExpression:
		return r.ReduceThisExpression(n)
	case *ThrowStatement:
		return r.ReduceThrowStatement(n, Reduce(r, Node(n.Expression)))
	case *TryCatchStatement:
		return r.ReduceTryCatchStatement(n, Reduce(r, Node(n.Body)), Reduce(r, Node(n.CatchClause)))
	case *TryFinallyStatement:
		var catchClause T
		if n.CatchClause != nil {
			catchClause = Reduce(r, Node(n.CatchClause))
		}
		return r.ReduceTryFinallyStatement(n, Reduce(r, Node(n.Body)), catchClause, Reduce(r, Node(n.Finalizer)))
	case *UnaryExpression:
		return r.ReduceUnaryExpression(n, Reduce(r, Node(n.Operand)))
	case *UpdateExpression:
		return r.ReduceUpdateExpression(n, Reduce(r, Node(n.Operand)))
	case *VariableDeclaration:
		return r.ReduceVariableDeclaration(n, reduceList(r, n.Declarators))
	case *VariableDeclarationStatement:
		return r.ReduceVariableDeclarationStatement(n, Reduce(r, Node(n.Declaration)))
	case *VariableDeclarator:
		return r.ReduceVariableDeclarator(n, Reduce(r, Node(n.Binding)), Reduce(r, Node(n.Init)))
	case *WhileStatement:
		return r.ReduceWhileStatement(n, Reduce(r, Node(n.Test)), Reduce(r, Node(n.Body)))
	case *WithStatement:
		return r.ReduceWithStatement(n, Reduce(r, Node(n.Object)), Reduce(r, Node(n.Body)))
	case *YieldExpression:
		return r.ReduceYieldExpression(n, Reduce(r, Node(n.Expression)))
	case *YieldGeneratorExpression:
		return r.ReduceYieldGeneratorExpression(n, Reduce(r, Node(n.Expression)))
	default:
		panic(fmt.Sprintf("syntax: unknown node %T", n))
	}
}

func reduceList[T any, N Node](r Reducer[T], ns []N) []T {
	ts := make([]T, len(ns))
	for i, n := range ns {
		ts[i] = Reduce(r, Node(n))
	}
	return ts
}

// Children returns the children of n that are present, in source
// order.
func Children(n Node) []Node {
	var ns []Node
	add := func(c Node) {
		if c != nil {
			ns = append(ns, c)
		}
	}
	switch n := n.(type) {
	case *ArrayAssignmentTarget:
		for _, c := range n.Elements {
			add(c)
		}
		add(n.Rest)
	case *ArrayBinding:
		for _, c := range n.Elements {
			add(c)
		}
		add(n.Rest)
	case *ArrayExpression:
		for _, c := range n.Elements {
			add(c)
		}
	case *ArrowExpression:
		if n.Params != nil {
			add(n.Params)
		}
		add(n.Body)
	case *AssignmentExpression:
		add(n.Binding)
		add(n.Expression)
	case *AssignmentTargetPropertyIdentifier:
		if n.Binding != nil {
			add(n.Binding)
		}
		add(n.Init)
	case *AssignmentTargetPropertyProperty:
		add(n.Name)
		add(n.Binding)
	case *AssignmentTargetWithDefault:
		add(n.Binding)
		add(n.Init)
	case *AwaitExpression:
		add(n.Expression)
	case *BinaryExpression:
		add(n.Left)
		add(n.Right)
	case *BindingPropertyIdentifier:
		if n.Binding != nil {
			add(n.Binding)
		}
		add(n.Init)
	case *BindingPropertyProperty:
		add(n.Name)
		add(n.Binding)
	case *BindingWithDefault:
		add(n.Binding)
		add(n.Init)
	case *Block:
		for _, c := range n.Statements {
			add(c)
		}
	case *BlockStatement:
		if n.Block != nil {
			add(n.Block)
		}
	case *CallExpression:
		add(n.Callee)
		for _, c := range n.Arguments {
			add(c)
		}
	case *CatchClause:
		add(n.Binding)
		if n.Body != nil {
			add(n.Body)
		}
	case *ClassDeclaration:
		if n.Name != nil {
			add(n.Name)
		}
		add(n.Super)
		for _, c := range n.Elements {
			add(c)
		}
	case *ClassElement:
		add(n.Method)
	case *ClassExpression:
		if n.Name != nil {
			add(n.Name)
		}
		add(n.Super)
		for _, c := range n.Elements {
			add(c)
		}
	case *CompoundAssignmentExpression:
		add(n.Binding)
		add(n.Expression)
	case *ComputedMemberAssignmentTarget:
		add(n.Object)
		add(n.Expression)
	case *ComputedMemberExpression:
		add(n.Object)
		add(n.Expression)
	case *ComputedPropertyName:
		add(n.Expression)
	case *ConditionalExpression:
		add(n.Test)
		add(n.Consequent)
		add(n.Alternate)
	case *DataProperty:
		add(n.Name)
		add(n.Expression)
	case *DoWhileStatement:
		add(n.Body)
		add(n.Test)
	case *Export:
		add(n.Declaration)
	case *ExportDefault:
		add(n.Body)
	case *ExportFrom:
		for _, c := range n.NamedExports {
			add(c)
		}
	case *ExportLocalSpecifier:
		if n.Name != nil {
			add(n.Name)
		}
	case *ExportLocals:
		for _, c := range n.NamedExports {
			add(c)
		}
	case *ExpressionStatement:
		add(n.Expression)
	case *ForInStatement:
		add(n.Left)
		add(n.Right)
		add(n.Body)
	case *ForOfStatement:
		add(n.Left)
		add(n.Right)
		add(n.Body)
	case *ForStatement:
		add(n.Init)
		add(n.Test)
		add(n.Update)
		add(n.Body)
	case *FormalParameters:
		for _, c := range n.Items {
			add(c)
		}
		add(n.Rest)
	case *FunctionBody:
		for _, c := range n.Directives {
			add(c)
		}
		for _, c := range n.Statements {
			add(c)
		}
	case *FunctionDeclaration:
		if n.Name != nil {
			add(n.Name)
		}
		if n.Params != nil {
			add(n.Params)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *FunctionExpression:
		if n.Name != nil {
			add(n.Name)
		}
		if n.Params != nil {
			add(n.Params)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *Getter:
		add(n.Name)
		if n.Body != nil {
			add(n.Body)
		}
	case *IfStatement:
		add(n.Test)
		add(n.Consequent)
		add(n.Alternate)
	case *Import:
		if n.DefaultBinding != nil {
			add(n.DefaultBinding)
		}
		for _, c := range n.NamedImports {
			add(c)
		}
	case *ImportNamespace:
		if n.DefaultBinding != nil {
			add(n.DefaultBinding)
		}
		if n.NamespaceBinding != nil {
			add(n.NamespaceBinding)
		}
	case *ImportSpecifier:
		if n.Binding != nil {
			add(n.Binding)
		}
	case *LabeledStatement:
		add(n.Body)
	case *Method:
		add(n.Name)
		if n.Params != nil {
			add(n.Params)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *Module:
		for _, c := range n.Directives {
			add(c)
		}
		for _, c := range n.Items {
			add(c)
		}
	case *NewExpression:
		add(n.Callee)
		for _, c := range n.Arguments {
			add(c)
		}
	case *ObjectAssignmentTarget:
		for _, c := range n.Properties {
			add(c)
		}
	case *ObjectBinding:
		for _, c := range n.Properties {
			add(c)
		}
	case *ObjectExpression:
		for _, c := range n.Properties {
			add(c)
		}
	case *ReturnStatement:
		add(n.Expression)
	case *Script:
		for _, c := range n.Directives {
			add(c)
		}
		for _, c := range n.Statements {
			add(c)
		}
	case *Setter:
		add(n.Name)
		add(n.Param)
		if n.Body != nil {
			add(n.Body)
		}
	case *ShorthandProperty:
		if n.Name != nil {
			add(n.Name)
		}
	case *SpreadElement:
		add(n.Expression)
	case *StaticMemberAssignmentTarget:
		add(n.Object)
	case *StaticMemberExpression:
		add(n.Object)
	case *SwitchCase:
		add(n.Test)
		for _, c := range n.Consequent {
			add(c)
		}
	case *SwitchDefault:
		for _, c := range n.Consequent {
			add(c)
		}
	case *SwitchStatement:
		add(n.Discriminant)
		for _, c := range n.Cases {
			add(c)
		}
	case *SwitchStatementWithDefault:
		add(n.Discriminant)
		for _, c := range n.PreDefaultCases {
			add(c)
		}
		if n.DefaultCase != nil {
			add(n.DefaultCase)
		}
		for _, c := range n.PostDefaultCases {
			add(c)
		}
	case *TemplateExpression:
		add(n.Tag)
		for _, c := range n.Elements {
			add(c)
		}
	case *ThrowStatement:
		add(n.Expression)
	case *TryCatchStatement:
		if n.Body != nil {
			add(n.Body)
		}
		if n.CatchClause != nil {
			add(n.CatchClause)
		}
	case *TryFinallyStatement:
		if n.Body != nil {
			add(n.Body)
		}
		if n.CatchClause != nil {
			add(n.CatchClause)
		}
		if n.Finalizer != nil {
			add(n.Finalizer)
		}
	case *UnaryExpression:
		add(n.Operand)
	case *UpdateExpression:
		add(n.Operand)
	case *VariableDeclaration:
		for _, c := range n.Declarators {
			add(c)
		}
	case *VariableDeclarationStatement:
		if n.Declaration != nil {
			add(n.Declaration)
		}
	case *VariableDeclarator:
		add(n.Binding)
		add(n.Init)
	case *WhileStatement:
		add(n.Test)
		add(n.Body)
	case *WithStatement:
		add(n.Object)
		add(n.Body)
	case *YieldExpression:
		add(n.Expression)
	case *YieldGeneratorExpression:
		add(n.Expression)
	}
	return ns
}
