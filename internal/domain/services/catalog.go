package services

import (
	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

// DuplicateID reports an external identifier produced by two different files.
// The database keeps the first row and ignores the later insert.
type DuplicateID struct {
	ExternalID string
	FirstFile  string
	SourceFile string
}

// BuildResult contains the normalized catalog.
type BuildResult struct {
	Media      []entities.Media
	Types      []entities.MediaType
	Dropped    int
	Duplicates []DuplicateID
}

// CatalogService turns raw catalog records into media rows.
type CatalogService struct{}

// NewCatalogService creates a new catalog service.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Build normalizes every record and assigns external identifiers. Records
// keep their input order; identifier scope resets whenever the source file
// changes.
func (s *CatalogService) Build(catalog *entities.Catalog) *BuildResult {
	result := &BuildResult{
		Media: make([]entities.Media, 0, len(catalog.Records)),
		Types: append([]entities.MediaType(nil), catalog.Types...),
	}

	var (
		resolver    *IdentityResolver
		currentFile string
		firstFile   = make(map[string]string, len(catalog.Records))
	)

	for i := range catalog.Records {
		rec := &catalog.Records[i]
		if resolver == nil || rec.SourceFile != currentFile {
			resolver = NewIdentityResolver()
			currentFile = rec.SourceFile
		}

		item, ok := Normalize(*rec)
		if !ok {
			result.Dropped++
			continue
		}

		id := resolver.Resolve(rec.MediaType, item.Title, item.Year)
		if prev, seen := firstFile[id]; seen && prev != rec.SourceFile {
			result.Duplicates = append(result.Duplicates, DuplicateID{
				ExternalID: id,
				FirstFile:  prev,
				SourceFile: rec.SourceFile,
			})
		} else if !seen {
			firstFile[id] = rec.SourceFile
		}

		result.Media = append(result.Media, entities.Media{
			ExternalID:      id,
			MediaType:       rec.MediaType,
			MediaClass:      rec.MediaType.Class(),
			Title:           item.Title,
			ReleaseDate:     ReleaseDate(item.Year),
			CountryOfOrigin: item.Country,
			Creators:        item.Creators,
			Description:     item.Description,
			Attributes:      item.Attributes,
		})
	}

	return result
}

// Script assembles the full seed plan for a built catalog.
func (s *CatalogService) Script(result *BuildResult, users []entities.SeedUser, passwordHash string) entities.SeedScript {
	return entities.SeedScript{
		PasswordHash: passwordHash,
		Users:        users,
		Media:        result.Media,
		Lists:        PlanDemoLists(users, result.Types),
	}
}
