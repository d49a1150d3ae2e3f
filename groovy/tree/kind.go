package tree

// Kind is the element type attached to a completed node.
type Kind int

const (
	KindError Kind = iota
	KindToken

	KindFile
	KindPackageDefinition
	KindImportStatement

	// Declarations
	KindClassDefinition
	KindClassBody
	KindExtendsClause
	KindConstructor
	KindMethod
	KindField
	KindModifiers
	KindParameterList
	KindParameter
	KindVariableDeclaration
	KindVariable

	// Statements
	KindBlock
	KindLazyBlock
	KindForStatement
	KindForInClause
	KindReturnStatement

	// Type elements
	KindPrimitiveType
	KindClassType
	KindArrayType
	KindCodeReference
	KindTypeArgumentList
	KindWildcardType

	// Expressions
	KindReferenceExpression
	KindMethodCallExpression
	KindApplicationExpression
	KindApplicationIndex
	KindIndexExpression
	KindArgumentList
	KindNamedArgument
	KindAssignmentExpression
	KindLogicalExpression
	KindEqualityExpression
	KindRelationalExpression
	KindAdditiveExpression
	KindMultiplicativeExpression
	KindUnaryExpression
	KindCastExpression
	KindParenthesizedExpression
	KindLiteral
	KindListExpression
	KindClosure
	KindNewExpression
	KindThisExpression
)

var kindNames = map[Kind]string{
	KindError:                    "Error",
	KindToken:                    "Token",
	KindFile:                     "File",
	KindPackageDefinition:        "PackageDefinition",
	KindImportStatement:          "ImportStatement",
	KindClassDefinition:          "ClassDefinition",
	KindClassBody:                "ClassBody",
	KindExtendsClause:            "ExtendsClause",
	KindConstructor:              "Constructor",
	KindMethod:                   "Method",
	KindField:                    "Field",
	KindModifiers:                "Modifiers",
	KindParameterList:            "ParameterList",
	KindParameter:                "Parameter",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariable:                 "Variable",
	KindBlock:                    "Block",
	KindLazyBlock:                "LazyBlock",
	KindForStatement:             "ForStatement",
	KindForInClause:              "ForInClause",
	KindReturnStatement:          "ReturnStatement",
	KindPrimitiveType:            "PrimitiveType",
	KindClassType:                "ClassType",
	KindArrayType:                "ArrayType",
	KindCodeReference:            "CodeReference",
	KindTypeArgumentList:         "TypeArgumentList",
	KindWildcardType:             "WildcardType",
	KindReferenceExpression:      "ReferenceExpression",
	KindMethodCallExpression:     "MethodCallExpression",
	KindApplicationExpression:    "ApplicationExpression",
	KindApplicationIndex:         "ApplicationIndex",
	KindIndexExpression:          "IndexExpression",
	KindArgumentList:             "ArgumentList",
	KindNamedArgument:            "NamedArgument",
	KindAssignmentExpression:     "AssignmentExpression",
	KindLogicalExpression:        "LogicalExpression",
	KindEqualityExpression:       "EqualityExpression",
	KindRelationalExpression:     "RelationalExpression",
	KindAdditiveExpression:       "AdditiveExpression",
	KindMultiplicativeExpression: "MultiplicativeExpression",
	KindUnaryExpression:          "UnaryExpression",
	KindCastExpression:           "CastExpression",
	KindParenthesizedExpression:  "ParenthesizedExpression",
	KindLiteral:                  "Literal",
	KindListExpression:           "ListExpression",
	KindClosure:                  "Closure",
	KindNewExpression:            "NewExpression",
	KindThisExpression:           "ThisExpression",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
