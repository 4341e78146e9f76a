package atoms

// Export some internal functions for testing

var Fields = fields
var IsAtomLine = isAtomLine
var CountAtomLines = countAtomLines
