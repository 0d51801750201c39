package syntax

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// keywords holds the C and C++ reserved words, including the primitive types.
var keywords = wordSet(
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char8_t", "char16_t", "char32_t",
	"class", "compl", "concept", "const", "consteval", "constexpr", "constinit",
	"const_cast", "continue", "co_await", "co_return", "co_yield", "decltype",
	"default", "delete", "do", "double", "dynamic_cast", "else", "enum",
	"explicit", "export", "extern", "false", "float", "for", "friend", "goto",
	"if", "inline", "int", "long", "mutable", "namespace", "new", "noexcept",
	"not", "not_eq", "nullptr", "operator", "or", "or_eq", "private",
	"protected", "public", "register", "reinterpret_cast", "requires",
	"restrict", "return", "short", "signed", "sizeof", "static",
	"static_assert", "static_cast", "struct", "switch", "template", "this",
	"thread_local", "throw", "true", "try", "typedef", "typeid", "typename",
	"union", "unsigned", "using", "virtual", "void", "volatile", "wchar_t",
	"while", "xor", "xor_eq", "override", "final",
)

// typeNames holds library type names and STL containers.
var typeNames = wordSet(
	"string", "wstring", "string_view", "vector", "map", "multimap", "set",
	"multiset", "unordered_map", "unordered_set", "list", "forward_list",
	"deque", "queue", "stack", "priority_queue", "pair", "tuple", "array",
	"bitset", "optional", "variant", "any", "function", "shared_ptr",
	"unique_ptr", "weak_ptr", "iterator", "const_iterator", "size_t",
	"ssize_t", "ptrdiff_t", "int8_t", "int16_t", "int32_t", "int64_t",
	"uint8_t", "uint16_t", "uint32_t", "uint64_t", "intptr_t", "uintptr_t",
	"FILE", "ostream", "istream", "iostream", "ifstream", "ofstream",
	"fstream", "stringstream", "istringstream", "ostringstream", "thread",
	"mutex", "atomic", "exception", "runtime_error", "logic_error",
)

// libraryCalls holds standard-library identifiers worth calling out.
var libraryCalls = wordSet(
	"std", "cout", "cin", "cerr", "clog", "endl", "printf", "scanf", "puts",
	"gets", "getchar", "putchar", "fprintf", "fscanf", "sprintf", "snprintf",
	"fopen", "fclose", "fgets", "fputs", "malloc", "calloc", "realloc", "free",
	"memcpy", "memset", "memmove", "memcmp", "strlen", "strcpy", "strncpy",
	"strcmp", "strncmp", "strcat", "strchr", "strstr", "exit", "abort",
	"atoi", "atof", "abs", "sqrt", "pow", "sin", "cos", "tan", "floor", "ceil",
	"rand", "srand", "time", "assert", "max", "min", "swap", "sort",
	"stable_sort", "reverse", "find", "count", "accumulate", "transform",
	"lower_bound", "upper_bound", "binary_search", "fill", "copy", "move",
	"getline", "to_string", "stoi", "stol", "stod", "make_pair", "make_tuple",
	"make_shared", "make_unique", "push_back", "pop_back", "emplace_back",
	"push", "pop", "top", "front", "back", "begin", "end", "size", "empty",
	"insert", "erase", "clear", "at", "length", "substr",
)

// IsKeyword reports whether word is a reserved keyword.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// IsTypeName reports whether word is a known library type or container.
func IsTypeName(word string) bool {
	_, ok := typeNames[word]
	return ok
}

// IsLibraryCall reports whether word is a known standard-library identifier.
func IsLibraryCall(word string) bool {
	_, ok := libraryCalls[word]
	return ok
}

// Classify picks the kind of an identifier-like word. next is the byte right
// after the word, or 0 at end of line.
func Classify(word string, next byte) Kind {
	switch {
	case IsKeyword(word):
		return Keyword
	case IsTypeName(word):
		return TypeName
	case IsLibraryCall(word):
		return LibraryCall
	case next == '(':
		return CallIdentifier
	default:
		return PlainIdentifier
	}
}
