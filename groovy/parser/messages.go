package parser

var messages = map[string]string{
	"unexpected.token":            "unexpected token",
	"end.of.file":                 "end of file",
	"separator.expected":          "';' or new line expected",
	"expression.expected":         "expression expected",
	"identifier.expected":         "identifier expected",
	"type.expected":               "type expected",
	"class.body.expected":         "class body expected",
	"class.member.expected":       "class member expected",
	"method.return.type.expected": "method return type expected",
	"ambiguous.code.block":        "ambiguous code block",
	"block.not.closed":            "'}' expected",
	"maximum.recursion.level":     "maximum recursion level reached",
}

// Message resolves a message key. Unknown keys are returned unchanged.
func Message(key string) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return key
}
