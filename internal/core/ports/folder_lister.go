package ports

import "go.trai.ch/glance/internal/core/domain"

// FolderLister lists the direct children of a folder.
//
//go:generate mockgen -source=folder_lister.go -destination=mocks/mock_folder_lister.go -package=mocks
type FolderLister interface {
	// ListDirectEntries returns the entries of folder without descending into subfolders.
	ListDirectEntries(folder string) ([]domain.FolderEntry, error)
}
