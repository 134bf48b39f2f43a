package nearby

// StorageLocation names an area that Storage reads from and writes to.
type StorageLocation int

// StorageLocation constants.
const (
	// StorageBundle is the read-only area shipped with the application.
	StorageBundle StorageLocation = iota
	// StorageDocuments is the user-writable documents area.
	StorageDocuments
	// StorageApplicationSupport is the application-private support area.
	StorageApplicationSupport
)

// String returns the name of the storage location.
func (l StorageLocation) String() string {
	switch l {
	case StorageBundle:
		return "bundle"
	case StorageDocuments:
		return "documents"
	case StorageApplicationSupport:
		return "application-support"
	default:
		return "unknown"
	}
}

// Storage persists JSON-serializable values under a name in a storage
// location. Failures are logged by the implementation and reported only as
// a false return; callers treat that as absent data or a skipped write.
type Storage interface {
	// Store encodes v and writes it under name. Returns false on failure.
	Store(name string, loc StorageLocation, v any) bool

	// Retrieve decodes the value stored under name into v. Returns false if
	// nothing is stored or it cannot be decoded.
	Retrieve(name string, loc StorageLocation, v any) bool
}
