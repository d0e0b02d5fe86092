// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package syntax

// Membership of node kinds in the node categories.

func (*ArrayAssignmentTarget) node() {}
func (*ArrayBinding) node() {}
func (*ArrayExpression) node() {}
func (*ArrowExpression) node() {}
func (*AssignmentExpression) node() {}
func (*AssignmentTargetIdentifier) node() {}
func (*AssignmentTargetPropertyIdentifier) node() {}
func (*AssignmentTargetPropertyProperty) node() {}
func (*AssignmentTargetWithDefault) node() {}
func (*AwaitExpression) node() {}
func (*BinaryExpression) node() {}
func (*BindingIdentifier) node() {}
func (*BindingPropertyIdentifier) node() {}
func (*BindingPropertyProperty) node() {}
func (*BindingWithDefault) node() {}
func (*Block) node() {}
func (*BlockStatement) node() {}
func (*BreakStatement) node() {}
func (*CallExpression) node() {}
func (*CatchClause) node() {}
func (*ClassDeclaration) node() {}
func (*ClassElement) node() {}
func (*ClassExpression) node() {}
func (*CompoundAssignmentExpression) node() {}
func (*ComputedMemberAssignmentTarget) node() {}
func (*ComputedMemberExpression) node() {}
func (*ComputedPropertyName) node() {}
func (*ConditionalExpression) node() {}
func (*ContinueStatement) node() {}
func (*DataProperty) node() {}
func (*DebuggerStatement) node() {}
func (*Directive) node() {}
func (*DoWhileStatement) node() {}
func (*EmptyStatement) node() {}
func (*Export) node() {}
func (*ExportAllFrom) node() {}
func (*ExportDefault) node() {}
func (*ExportFrom) node() {}
func (*ExportFromSpecifier) node() {}
func (*ExportLocalSpecifier) node() {}
func (*ExportLocals) node() {}
func (*ExpressionStatement) node() {}
func (*ForInStatement) node() {}
func (*ForOfStatement) node() {}
func (*ForStatement) node() {}
func (*FormalParameters) node() {}
func (*FunctionBody) node() {}
func (*FunctionDeclaration) node() {}
func (*FunctionExpression) node() {}
func (*Getter) node() {}
func (*IdentifierExpression) node() {}
func (*IfStatement) node() {}
func (*Import) node() {}
func (*ImportNamespace) node() {}
func (*ImportSpecifier) node() {}
func (*LabeledStatement) node() {}
func (*LiteralBooleanExpression) node() {}
func (*LiteralInfinityExpression) node() {}
func (*LiteralNullExpression) node() {}
func (*LiteralNumericExpression) node() {}
func (*LiteralRegExpExpression) node() {}
func (*LiteralStringExpression) node() {}
func (*Method) node() {}
func (*Module) node() {}
func (*NewExpression) node() {}
func (*NewTargetExpression) node() {}
func (*ObjectAssignmentTarget) node() {}
func (*ObjectBinding) node() {}
func (*ObjectExpression) node() {}
func (*ReturnStatement) node() {}
func (*Script) node() {}
func (*Setter) node() {}
func (*ShorthandProperty) node() {}
func (*SpreadElement) node() {}
func (*StaticMemberAssignmentTarget) node() {}
func (*StaticMemberExpression) node() {}
func (*StaticPropertyName) node() {}
func (*Super) node() {}
func (*SwitchCase) node() {}
func (*SwitchDefault) node() {}
func (*SwitchStatement) node() {}
func (*SwitchStatementWithDefault) node() {}
func (*TemplateElement) node() {}
func (*TemplateExpression) node() {}
func (*ThisExpression) node() {}
func (*ThrowStatement) node() {}
func (*TryCatchStatement) node() {}
func (*TryFinallyStatement) node() {}
func (*UnaryExpression) node() {}
func (*UpdateExpression) node() {}
func (*VariableDeclaration) node() {}
func (*VariableDeclarationStatement) node() {}
func (*VariableDeclarator) node() {}
func (*WhileStatement) node() {}
func (*WithStatement) node() {}
func (*YieldExpression) node() {}
func (*YieldGeneratorExpression) node() {}

func (*Module) program() {}
func (*Script) program() {}

func (*BlockStatement) moduleItem() {}
func (*BreakStatement) moduleItem() {}
func (*ClassDeclaration) moduleItem() {}
func (*ContinueStatement) moduleItem() {}
func (*DebuggerStatement) moduleItem() {}
func (*DoWhileStatement) moduleItem() {}
func (*EmptyStatement) moduleItem() {}
func (*Export) moduleItem() {}
func (*ExportAllFrom) moduleItem() {}
func (*ExportDefault) moduleItem() {}
func (*ExportFrom) moduleItem() {}
func (*ExportLocals) moduleItem() {}
func (*ExpressionStatement) moduleItem() {}
func (*ForInStatement) moduleItem() {}
func (*ForOfStatement) moduleItem() {}
func (*ForStatement) moduleItem() {}
func (*FunctionDeclaration) moduleItem() {}
func (*IfStatement) moduleItem() {}
func (*Import) moduleItem() {}
func (*ImportNamespace) moduleItem() {}
func (*LabeledStatement) moduleItem() {}
func (*ReturnStatement) moduleItem() {}
func (*SwitchStatement) moduleItem() {}
func (*SwitchStatementWithDefault) moduleItem() {}
func (*ThrowStatement) moduleItem() {}
func (*TryCatchStatement) moduleItem() {}
func (*TryFinallyStatement) moduleItem() {}
func (*VariableDeclarationStatement) moduleItem() {}
func (*WhileStatement) moduleItem() {}
func (*WithStatement) moduleItem() {}

func (*BlockStatement) statement() {}
func (*BreakStatement) statement() {}
func (*ClassDeclaration) statement() {}
func (*ContinueStatement) statement() {}
func (*DebuggerStatement) statement() {}
func (*DoWhileStatement) statement() {}
func (*EmptyStatement) statement() {}
func (*ExpressionStatement) statement() {}
func (*ForInStatement) statement() {}
func (*ForOfStatement) statement() {}
func (*ForStatement) statement() {}
func (*FunctionDeclaration) statement() {}
func (*IfStatement) statement() {}
func (*LabeledStatement) statement() {}
func (*ReturnStatement) statement() {}
func (*SwitchStatement) statement() {}
func (*SwitchStatementWithDefault) statement() {}
func (*ThrowStatement) statement() {}
func (*TryCatchStatement) statement() {}
func (*TryFinallyStatement) statement() {}
func (*VariableDeclarationStatement) statement() {}
func (*WhileStatement) statement() {}
func (*WithStatement) statement() {}

func (*ArrayExpression) expression() {}
func (*ArrowExpression) expression() {}
func (*AssignmentExpression) expression() {}
func (*AwaitExpression) expression() {}
func (*BinaryExpression) expression() {}
func (*CallExpression) expression() {}
func (*ClassExpression) expression() {}
func (*CompoundAssignmentExpression) expression() {}
func (*ComputedMemberExpression) expression() {}
func (*ConditionalExpression) expression() {}
func (*FunctionExpression) expression() {}
func (*IdentifierExpression) expression() {}
func (*LiteralBooleanExpression) expression() {}
func (*LiteralInfinityExpression) expression() {}
func (*LiteralNullExpression) expression() {}
func (*LiteralNumericExpression) expression() {}
func (*LiteralRegExpExpression) expression() {}
func (*LiteralStringExpression) expression() {}
func (*NewExpression) expression() {}
func (*NewTargetExpression) expression() {}
func (*ObjectExpression) expression() {}
func (*StaticMemberExpression) expression() {}
func (*TemplateExpression) expression() {}
func (*ThisExpression) expression() {}
func (*UnaryExpression) expression() {}
func (*UpdateExpression) expression() {}
func (*YieldExpression) expression() {}
func (*YieldGeneratorExpression) expression() {}

func (*ArrayExpression) expressionSuper() {}
func (*ArrowExpression) expressionSuper() {}
func (*AssignmentExpression) expressionSuper() {}
func (*AwaitExpression) expressionSuper() {}
func (*BinaryExpression) expressionSuper() {}
func (*CallExpression) expressionSuper() {}
func (*ClassExpression) expressionSuper() {}
func (*CompoundAssignmentExpression) expressionSuper() {}
func (*ComputedMemberExpression) expressionSuper() {}
func (*ConditionalExpression) expressionSuper() {}
func (*FunctionExpression) expressionSuper() {}
func (*IdentifierExpression) expressionSuper() {}
func (*LiteralBooleanExpression) expressionSuper() {}
func (*LiteralInfinityExpression) expressionSuper() {}
func (*LiteralNullExpression) expressionSuper() {}
func (*LiteralNumericExpression) expressionSuper() {}
func (*LiteralRegExpExpression) expressionSuper() {}
func (*LiteralStringExpression) expressionSuper() {}
func (*NewExpression) expressionSuper() {}
func (*NewTargetExpression) expressionSuper() {}
func (*ObjectExpression) expressionSuper() {}
func (*StaticMemberExpression) expressionSuper() {}
func (*Super) expressionSuper() {}
func (*TemplateExpression) expressionSuper() {}
func (*ThisExpression) expressionSuper() {}
func (*UnaryExpression) expressionSuper() {}
func (*UpdateExpression) expressionSuper() {}
func (*YieldExpression) expressionSuper() {}
func (*YieldGeneratorExpression) expressionSuper() {}

func (*ArrayExpression) spreadElementExpression() {}
func (*ArrowExpression) spreadElementExpression() {}
func (*AssignmentExpression) spreadElementExpression() {}
func (*AwaitExpression) spreadElementExpression() {}
func (*BinaryExpression) spreadElementExpression() {}
func (*CallExpression) spreadElementExpression() {}
func (*ClassExpression) spreadElementExpression() {}
func (*CompoundAssignmentExpression) spreadElementExpression() {}
func (*ComputedMemberExpression) spreadElementExpression() {}
func (*ConditionalExpression) spreadElementExpression() {}
func (*FunctionExpression) spreadElementExpression() {}
func (*IdentifierExpression) spreadElementExpression() {}
func (*LiteralBooleanExpression) spreadElementExpression() {}
func (*LiteralInfinityExpression) spreadElementExpression() {}
func (*LiteralNullExpression) spreadElementExpression() {}
func (*LiteralNumericExpression) spreadElementExpression() {}
func (*LiteralRegExpExpression) spreadElementExpression() {}
func (*LiteralStringExpression) spreadElementExpression() {}
func (*NewExpression) spreadElementExpression() {}
func (*NewTargetExpression) spreadElementExpression() {}
func (*ObjectExpression) spreadElementExpression() {}
func (*SpreadElement) spreadElementExpression() {}
func (*StaticMemberExpression) spreadElementExpression() {}
func (*TemplateExpression) spreadElementExpression() {}
func (*ThisExpression) spreadElementExpression() {}
func (*UnaryExpression) spreadElementExpression() {}
func (*UpdateExpression) spreadElementExpression() {}
func (*YieldExpression) spreadElementExpression() {}
func (*YieldGeneratorExpression) spreadElementExpression() {}

func (*ArrayExpression) arrowBody() {}
func (*ArrowExpression) arrowBody() {}
func (*AssignmentExpression) arrowBody() {}
func (*AwaitExpression) arrowBody() {}
func (*BinaryExpression) arrowBody() {}
func (*CallExpression) arrowBody() {}
func (*ClassExpression) arrowBody() {}
func (*CompoundAssignmentExpression) arrowBody() {}
func (*ComputedMemberExpression) arrowBody() {}
func (*ConditionalExpression) arrowBody() {}
func (*FunctionBody) arrowBody() {}
func (*FunctionExpression) arrowBody() {}
func (*IdentifierExpression) arrowBody() {}
func (*LiteralBooleanExpression) arrowBody() {}
func (*LiteralInfinityExpression) arrowBody() {}
func (*LiteralNullExpression) arrowBody() {}
func (*LiteralNumericExpression) arrowBody() {}
func (*LiteralRegExpExpression) arrowBody() {}
func (*LiteralStringExpression) arrowBody() {}
func (*NewExpression) arrowBody() {}
func (*NewTargetExpression) arrowBody() {}
func (*ObjectExpression) arrowBody() {}
func (*StaticMemberExpression) arrowBody() {}
func (*TemplateExpression) arrowBody() {}
func (*ThisExpression) arrowBody() {}
func (*UnaryExpression) arrowBody() {}
func (*UpdateExpression) arrowBody() {}
func (*YieldExpression) arrowBody() {}
func (*YieldGeneratorExpression) arrowBody() {}

func (*ArrayExpression) templatePart() {}
func (*ArrowExpression) templatePart() {}
func (*AssignmentExpression) templatePart() {}
func (*AwaitExpression) templatePart() {}
func (*BinaryExpression) templatePart() {}
func (*CallExpression) templatePart() {}
func (*ClassExpression) templatePart() {}
func (*CompoundAssignmentExpression) templatePart() {}
func (*ComputedMemberExpression) templatePart() {}
func (*ConditionalExpression) templatePart() {}
func (*FunctionExpression) templatePart() {}
func (*IdentifierExpression) templatePart() {}
func (*LiteralBooleanExpression) templatePart() {}
func (*LiteralInfinityExpression) templatePart() {}
func (*LiteralNullExpression) templatePart() {}
func (*LiteralNumericExpression) templatePart() {}
func (*LiteralRegExpExpression) templatePart() {}
func (*LiteralStringExpression) templatePart() {}
func (*NewExpression) templatePart() {}
func (*NewTargetExpression) templatePart() {}
func (*ObjectExpression) templatePart() {}
func (*StaticMemberExpression) templatePart() {}
func (*TemplateElement) templatePart() {}
func (*TemplateExpression) templatePart() {}
func (*ThisExpression) templatePart() {}
func (*UnaryExpression) templatePart() {}
func (*UpdateExpression) templatePart() {}
func (*YieldExpression) templatePart() {}
func (*YieldGeneratorExpression) templatePart() {}

func (*ArrayExpression) forInit() {}
func (*ArrowExpression) forInit() {}
func (*AssignmentExpression) forInit() {}
func (*AwaitExpression) forInit() {}
func (*BinaryExpression) forInit() {}
func (*CallExpression) forInit() {}
func (*ClassExpression) forInit() {}
func (*CompoundAssignmentExpression) forInit() {}
func (*ComputedMemberExpression) forInit() {}
func (*ConditionalExpression) forInit() {}
func (*FunctionExpression) forInit() {}
func (*IdentifierExpression) forInit() {}
func (*LiteralBooleanExpression) forInit() {}
func (*LiteralInfinityExpression) forInit() {}
func (*LiteralNullExpression) forInit() {}
func (*LiteralNumericExpression) forInit() {}
func (*LiteralRegExpExpression) forInit() {}
func (*LiteralStringExpression) forInit() {}
func (*NewExpression) forInit() {}
func (*NewTargetExpression) forInit() {}
func (*ObjectExpression) forInit() {}
func (*StaticMemberExpression) forInit() {}
func (*TemplateExpression) forInit() {}
func (*ThisExpression) forInit() {}
func (*UnaryExpression) forInit() {}
func (*UpdateExpression) forInit() {}
func (*VariableDeclaration) forInit() {}
func (*YieldExpression) forInit() {}
func (*YieldGeneratorExpression) forInit() {}

func (*ArrayExpression) exportDefaultBody() {}
func (*ArrowExpression) exportDefaultBody() {}
func (*AssignmentExpression) exportDefaultBody() {}
func (*AwaitExpression) exportDefaultBody() {}
func (*BinaryExpression) exportDefaultBody() {}
func (*CallExpression) exportDefaultBody() {}
func (*ClassDeclaration) exportDefaultBody() {}
func (*ClassExpression) exportDefaultBody() {}
func (*CompoundAssignmentExpression) exportDefaultBody() {}
func (*ComputedMemberExpression) exportDefaultBody() {}
func (*ConditionalExpression) exportDefaultBody() {}
func (*FunctionDeclaration) exportDefaultBody() {}
func (*FunctionExpression) exportDefaultBody() {}
func (*IdentifierExpression) exportDefaultBody() {}
func (*LiteralBooleanExpression) exportDefaultBody() {}
func (*LiteralInfinityExpression) exportDefaultBody() {}
func (*LiteralNullExpression) exportDefaultBody() {}
func (*LiteralNumericExpression) exportDefaultBody() {}
func (*LiteralRegExpExpression) exportDefaultBody() {}
func (*LiteralStringExpression) exportDefaultBody() {}
func (*NewExpression) exportDefaultBody() {}
func (*NewTargetExpression) exportDefaultBody() {}
func (*ObjectExpression) exportDefaultBody() {}
func (*StaticMemberExpression) exportDefaultBody() {}
func (*TemplateExpression) exportDefaultBody() {}
func (*ThisExpression) exportDefaultBody() {}
func (*UnaryExpression) exportDefaultBody() {}
func (*UpdateExpression) exportDefaultBody() {}
func (*YieldExpression) exportDefaultBody() {}
func (*YieldGeneratorExpression) exportDefaultBody() {}

func (*ClassDeclaration) exportDeclaration() {}
func (*FunctionDeclaration) exportDeclaration() {}
func (*VariableDeclaration) exportDeclaration() {}

func (*ArrayBinding) binding() {}
func (*BindingIdentifier) binding() {}
func (*ObjectBinding) binding() {}

func (*ArrayBinding) parameter() {}
func (*BindingIdentifier) parameter() {}
func (*BindingWithDefault) parameter() {}
func (*ObjectBinding) parameter() {}

func (*BindingPropertyIdentifier) bindingProperty() {}
func (*BindingPropertyProperty) bindingProperty() {}

func (*ArrayAssignmentTarget) assignmentTarget() {}
func (*AssignmentTargetIdentifier) assignmentTarget() {}
func (*ComputedMemberAssignmentTarget) assignmentTarget() {}
func (*ObjectAssignmentTarget) assignmentTarget() {}
func (*StaticMemberAssignmentTarget) assignmentTarget() {}

func (*AssignmentTargetIdentifier) simpleAssignmentTarget() {}
func (*ComputedMemberAssignmentTarget) simpleAssignmentTarget() {}
func (*StaticMemberAssignmentTarget) simpleAssignmentTarget() {}

func (*ArrayAssignmentTarget) assignmentTargetMaybeDefault() {}
func (*AssignmentTargetIdentifier) assignmentTargetMaybeDefault() {}
func (*AssignmentTargetWithDefault) assignmentTargetMaybeDefault() {}
func (*ComputedMemberAssignmentTarget) assignmentTargetMaybeDefault() {}
func (*ObjectAssignmentTarget) assignmentTargetMaybeDefault() {}
func (*StaticMemberAssignmentTarget) assignmentTargetMaybeDefault() {}

func (*ArrayAssignmentTarget) forInOfLeft() {}
func (*AssignmentTargetIdentifier) forInOfLeft() {}
func (*ComputedMemberAssignmentTarget) forInOfLeft() {}
func (*ObjectAssignmentTarget) forInOfLeft() {}
func (*StaticMemberAssignmentTarget) forInOfLeft() {}
func (*VariableDeclaration) forInOfLeft() {}

func (*AssignmentTargetPropertyIdentifier) assignmentTargetProperty() {}
func (*AssignmentTargetPropertyProperty) assignmentTargetProperty() {}

func (*DataProperty) objectProperty() {}
func (*Getter) objectProperty() {}
func (*Method) objectProperty() {}
func (*Setter) objectProperty() {}
func (*ShorthandProperty) objectProperty() {}

func (*Getter) methodDefinition() {}
func (*Method) methodDefinition() {}
func (*Setter) methodDefinition() {}

func (*ComputedPropertyName) propertyName() {}
func (*StaticPropertyName) propertyName() {}
