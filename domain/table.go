package domain

// Table is a mongo collection name
type Table string

// Collections written by the indexing pipeline; this service only reads them.
const (
	TableResolverRecords Table = "resolverRecords"
	TableDomainResolvers Table = "domainResolvers"
	TablePrimaryNames    Table = "primaryNames"
)
