package constants

// Jurisdiction identifies one filing workflow.
type Jurisdiction string

// Stable values (used in CLI flags, API params, and log fields).
const (
	JurisdictionMichigan     Jurisdiction = "MI"       // Candidate Report PDFs, Schedules I-III
	JurisdictionArizona      Jurisdiction = "AZ"       // quarterly report PDFs, Schedule C2 et al.
	JurisdictionAlaskaPOFD   Jurisdiction = "AK_POFD"  // Public Official Financial Disclosure PDFs
	JurisdictionDisclosure   Jurisdiction = "HOUSE_FD" // congressional financial disclosure PDFs
	JurisdictionPennsylvania Jurisdiction = "PA"       // campaign finance TXT exports
)

// MetadataScheduleID is the reserved schedule identifier for filer-level
// header fields extracted from the document preamble.
const MetadataScheduleID = "_metadata"

// SourceFileColumn is the reserved metadata field holding the input document
// name. Profiles that stamp filing context onto schedule rows list it in
// their MetadataColumns; its value never comes from the document text.
const SourceFileColumn = "Source File"
