package catalog

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_mock.go -package=mock

import "github.com/MKhiriev/go-json-localization/internal/jsonvalue"

// ResourceLoader materializes catalogs from the bundle and from disk.
type ResourceLoader interface {
	// LoadBundled returns the first bundled catalog whose name ends with name.
	LoadBundled(name string) (jsonvalue.Value, error)
	// LoadFile returns the catalog stored at path.
	LoadFile(path string) (jsonvalue.Value, error)
}

// ResourceWriter persists a catalog to disk.
type ResourceWriter interface {
	// Write replaces the content of path with doc.
	Write(doc jsonvalue.Value, path string) error
}
