package view

import (
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/dataset"
)

// Kind discriminates the navigation view variants.
type Kind string

const (
	KindCategoryList    Kind = "category_list"
	KindInvalidCategory Kind = "invalid_category"
	KindCategoryDetail  Kind = "category_detail"
)

// View is the resolved navigation state for a requested (category, subtopic)
// pair. Exactly one variant applies; the populated fields depend on Kind.
type View struct {
	Kind Kind

	// CategoryList: all category names in stored order.
	Categories []string

	// InvalidCategory and CategoryDetail: the requested category name.
	Category string

	// CategoryDetail: subtopic names in stored order.
	Topics []string

	// CategoryDetail: the selected subtopic and its markdown content, both
	// empty when no subtopic is selected.
	Topic   string
	Content string
}

// Resolve maps a requested (category, subtopic) pair onto a view state.
// An unknown category yields InvalidCategory; an unknown subtopic inside a
// known category silently degrades to the unselected detail view.
func Resolve(store *dataset.Store, category, subtopic string) View {
	if category == "" {
		return View{
			Kind:       KindCategoryList,
			Categories: store.Categories(),
		}
	}

	cat, ok := store.Category(category)
	if !ok {
		return View{
			Kind:     KindInvalidCategory,
			Category: category,
		}
	}

	v := View{
		Kind:     KindCategoryDetail,
		Category: cat.Name(),
		Topics:   cat.Topics(),
	}
	if subtopic != "" {
		if content, ok := cat.Content(subtopic); ok {
			v.Topic = subtopic
			v.Content = content
		}
	}
	return v
}
