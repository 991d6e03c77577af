package roster

import "github.com/mcoot/mazedle-go/internal/model"

// defaultCharacters is the built-in Maze Runner catalog
var defaultCharacters = []model.Character{
	{ID: 1, Name: "Thomas", Gender: "Male", Age: 18, FirstAppearance: "The Maze Runner", Role: "Runner", Group: "Group A (Glade)", Status: "Immune", Survival: "Survived"},
	{ID: 2, Name: "Newt", Gender: "Male", Age: 18, FirstAppearance: "The Maze Runner", Role: "Second-in-Command", Group: "Group A (Glade)", Status: "Not Immune", Survival: "Deceased"},
	{ID: 3, Name: "Teresa Agnes", Gender: "Female", Age: 18, FirstAppearance: "The Maze Runner", Role: "Trigger", Group: "Group A (Glade)", Status: "Immune", Survival: "Deceased"},
	{ID: 4, Name: "Minho", Gender: "Male", Age: 20, FirstAppearance: "The Maze Runner", Role: "Keeper of the Runners", Group: "Group A (Glade)", Status: "Immune", Survival: "Survived"},
	{ID: 5, Name: "Gally", Gender: "Male", Age: 19, FirstAppearance: "The Maze Runner", Role: "Builder", Group: "Group A (Glade)", Status: "Immune", Survival: "Survived"},
	{ID: 6, Name: "Alby", Gender: "Male", Age: 19, FirstAppearance: "The Maze Runner", Role: "Leader", Group: "Group A (Glade)", Status: "Not Immune", Survival: "Deceased"},
	{ID: 7, Name: "Chuck", Gender: "Male", Age: 13, FirstAppearance: "The Maze Runner", Role: "Slopper", Group: "Group A (Glade)", Status: "Unknown", Survival: "Deceased"},
	{ID: 8, Name: "Frypan", Gender: "Male", Age: 18, FirstAppearance: "The Maze Runner", Role: "Cook", Group: "Group A (Glade)", Status: "Immune", Survival: "Survived"},
	{ID: 9, Name: "Brenda", Gender: "Female", Age: 19, FirstAppearance: "The Scorch Trials", Role: "Guide", Group: "Right Arm", Status: "Immune", Survival: "Survived"},
	{ID: 10, Name: "Jorge", Gender: "Male", Age: 45, FirstAppearance: "The Scorch Trials", Role: "Pilot", Group: "Right Arm", Status: "Unknown", Survival: "Survived"},
	{ID: 11, Name: "Aris Jones", Gender: "Male", Age: 17, FirstAppearance: "The Scorch Trials", Role: "Subject", Group: "Group B", Status: "Immune", Survival: "Survived"},
	{ID: 12, Name: "Sonya", Gender: "Female", Age: 18, FirstAppearance: "The Scorch Trials", Role: "Leader", Group: "Group B", Status: "Immune", Survival: "Survived"},
	{ID: 13, Name: "Harriet", Gender: "Female", Age: 18, FirstAppearance: "The Scorch Trials", Role: "Second-in-Command", Group: "Group B", Status: "Immune", Survival: "Survived"},
	{ID: 14, Name: "Ava Paige", Gender: "Female", Age: 50, FirstAppearance: "The Maze Runner", Role: "Chancellor", Group: "WICKED", Status: "Unknown", Survival: "Deceased"},
	{ID: 15, Name: "Janson (Rat Man)", Gender: "Male", Age: 48, FirstAppearance: "The Scorch Trials", Role: "Assistant Director", Group: "WICKED", Status: "Not Immune", Survival: "Deceased"},
	{ID: 16, Name: "Vince", Gender: "Male", Age: 42, FirstAppearance: "The Scorch Trials", Role: "Leader", Group: "Right Arm", Status: "Immune", Survival: "Survived"},
}

// Default returns the built-in roster
func Default() *Roster {
	return MustNew(defaultCharacters)
}
