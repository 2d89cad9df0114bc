package catalogs

// DeepCopyPublication creates a copy of a publication with no shared
// slice references.
func DeepCopyPublication(pub Publication) Publication {
	pubCopy := pub

	if pub.Authors != nil {
		pubCopy.Authors = make([]string, len(pub.Authors))
		copy(pubCopy.Authors, pub.Authors)
	}
	if pub.Variants != nil {
		pubCopy.Variants = make([]string, len(pub.Variants))
		copy(pubCopy.Variants, pub.Variants)
	}

	return pubCopy
}

// Copy creates a deep copy of the catalog. The backing filesystem is
// shared: the published files are immutable, only the metadata maps are
// duplicated.
func (cat *catalog) Copy() (Catalog, error) {
	newCat := &catalog{
		publications: NewPublications(WithPublicationsCapacity(cat.publications.Len())),
		options:      cat.options,
	}

	var copyErr error
	cat.publications.ForEach(func(id PublicationID, pub *Publication) bool {
		pubCopy := DeepCopyPublication(*pub)
		if err := newCat.publications.Set(id, &pubCopy); err != nil {
			copyErr = err
			return false
		}
		return true
	})
	if copyErr != nil {
		return nil, copyErr
	}

	return newCat, nil
}
