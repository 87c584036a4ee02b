package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventCourse is one of the fixed courses an event menu offers choices in.
type EventCourse string

const (
	CourseStarters  EventCourse = "starters"
	CourseMains     EventCourse = "mains"
	CourseDesserts  EventCourse = "desserts"
	CourseBeverages EventCourse = "beverages"
)

// EventCourses returns the fixed course values in service order.
func EventCourses() []EventCourse {
	return []EventCourse{CourseStarters, CourseMains, CourseDesserts, CourseBeverages}
}

// EventMenu is a fixed-price banquet menu: a set of selectable options per
// course, priced for a configured guest count. Costing averages the options
// within each course because each diner picks one of them.
type EventMenu struct {
	gorm.Model
	Name            string          `gorm:"not null;index" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	GuestCount      int             `gorm:"not null;default:0" json:"guest_count"`
	TargetMarginPct decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"target_margin_pct"`
	SalePrice       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"sale_price"`

	Courses []EventMenuCourse `gorm:"foreignKey:EventMenuID" json:"courses,omitempty"`
	Options []EventMenuOption `gorm:"foreignKey:EventMenuID" json:"options,omitempty"`
}

// EventMenuCourse stores how many servings of a course each guest receives.
type EventMenuCourse struct {
	gorm.Model
	EventMenuID uint        `gorm:"not null;index" json:"event_menu_id"`
	Course      EventCourse `gorm:"type:varchar(32);not null" json:"course"`
	Quantity    int         `gorm:"not null;default:1" json:"quantity"`
}

// EventMenuOption is one selectable choice within a course. It references
// either a dish or a beverage ingredient and carries the cost and reference
// menu price snapshotted when the option was added.
type EventMenuOption struct {
	gorm.Model
	EventMenuID   uint            `gorm:"not null;index" json:"event_menu_id"`
	Course        EventCourse     `gorm:"type:varchar(32);not null" json:"course"`
	DishID        *uint           `json:"dish_id,omitempty"`
	IngredientID  *uint           `json:"ingredient_id,omitempty"`
	SnapshotCost  decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0" json:"snapshot_cost"`
	SnapshotPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"snapshot_price"`

	Dish       *Dish       `gorm:"foreignKey:DishID" json:"dish,omitempty"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// CourseQuantity returns the configured servings per guest for a course,
// defaulting to one serving when the course was never configured.
func (m EventMenu) CourseQuantity(course EventCourse) int {
	for _, c := range m.Courses {
		if c.Course == course {
			return c.Quantity
		}
	}
	return 1
}

// CourseOptions returns the options belonging to the given course.
func (m EventMenu) CourseOptions(course EventCourse) []EventMenuOption {
	var out []EventMenuOption
	for _, opt := range m.Options {
		if opt.Course == course {
			out = append(out, opt)
		}
	}
	return out
}
