package models

import "testing"

func TestCourseQuantityDefaultsToOneServing(t *testing.T) {
	t.Parallel()

	menu := EventMenu{
		Courses: []EventMenuCourse{
			{Course: CourseMains, Quantity: 3},
		},
	}

	if got := menu.CourseQuantity(CourseMains); got != 3 {
		t.Fatalf("expected configured quantity 3, got %d", got)
	}
	if got := menu.CourseQuantity(CourseDesserts); got != 1 {
		t.Fatalf("expected default quantity 1, got %d", got)
	}
}

func TestCourseOptionsFiltersByCourse(t *testing.T) {
	t.Parallel()

	dishID := uint(1)
	wineID := uint(2)
	menu := EventMenu{
		Options: []EventMenuOption{
			{Course: CourseMains, DishID: &dishID},
			{Course: CourseBeverages, IngredientID: &wineID},
		},
	}

	if got := len(menu.CourseOptions(CourseMains)); got != 1 {
		t.Fatalf("expected one mains option, got %d", got)
	}
	if got := len(menu.CourseOptions(CourseStarters)); got != 0 {
		t.Fatalf("expected no starters options, got %d", got)
	}
}

func TestEnumerationsAreStable(t *testing.T) {
	t.Parallel()

	if got := len(EventCourses()); got != 4 {
		t.Fatalf("expected four event courses, got %d", got)
	}
	if got := len(DishSections()); got != 5 {
		t.Fatalf("expected five dish sections, got %d", got)
	}
	if got := len(IngredientCategories()); got != 7 {
		t.Fatalf("expected seven ingredient categories, got %d", got)
	}
}
