package exc

const (
	CodeUnknownFatal                  = "E0000"
	CodeFileNotFound                  = "E0001"
	CodeUnsuportedFileSystemOperation = "E0002"
	CodePermissionDenied              = "E0003"
	CodeUnsupportedFileFormat         = "E0004"
	CodeProtobufParseError            = "E0005"
	CodeYAMLParseError                = "E0006"
	CodeSchemaViolation               = "E0007"
	CodeGenerateFailed                = "E0008"
	CodeInvalidPattern                = "E0009"
	CodeFileTooLarge                  = "E0010"
	CodeProtobufWarning               = "E0011"
)

// Definition checks.
const (
	CodeDuplicateFamily  = "E0100"
	CodeDuplicateMember  = "E0101"
	CodeValueOutOfRange  = "E0102"
	CodeFlagNotSingleBit = "E0103"
	CodeEmptyFamily      = "E0104"
	CodeInvalidName      = "E0105"
)

// Registry lookups. These only occur when a caller names a family or member
// that does not exist, which is a defect in the calling code.
const (
	CodeUnknownFamily = "E0200"
	CodeUnknownMember = "E0201"
	CodeNotFlags      = "E0202"
)

var (
	defaultNonFatal = map[string]bool{
		CodeEmptyFamily:     true,
		CodeProtobufWarning: true,
	}
)
