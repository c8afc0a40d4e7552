package main

import (
	"log"

	"github.com/jkoopman/lexcursus/app/models"
	"github.com/jkoopman/lexcursus/internal/pkg/database"
	"github.com/jkoopman/lexcursus/internal/pkg/env"
)

type lessonSeed struct {
	title       string
	description string
	duration    int
}

type moduleSeed struct {
	title   string
	lessons []lessonSeed
}

// All lessons reference the same public Vimeo demo video until real
// recordings are uploaded.
const seedVimeoID = "76979871"

var courseSeed = struct {
	title       string
	description string
	modules     []moduleSeed
}{
	title:       "Juridische Basiskennis voor Ondernemers",
	description: "Leer de essentiële juridische kennis die elke ondernemer nodig heeft. Van contracten tot aansprakelijkheid.",
	modules: []moduleSeed{
		{
			title: "Module 1: Inleiding Ondernemingsrecht",
			lessons: []lessonSeed{
				{"Welkom bij de cursus", "Introductie en overzicht van wat je gaat leren.", 5},
				{"Rechtsvormen voor ondernemers", "ZZP, BV, VOF - welke rechtsvorm past bij jou?", 12},
				{"Belangrijke juridische termen", "De basis terminologie die je moet kennen.", 8},
			},
		},
		{
			title: "Module 2: Contracten en Overeenkomsten",
			lessons: []lessonSeed{
				{"Wat is een contract?", "De basis van contractrecht.", 10},
				{"Algemene voorwaarden", "Hoe stel je effectieve algemene voorwaarden op?", 15},
				{"Wanprestatie en ontbinding", "Wat te doen als een contract niet wordt nagekomen?", 12},
			},
		},
		{
			title: "Module 3: Aansprakelijkheid",
			lessons: []lessonSeed{
				{"Soorten aansprakelijkheid", "Contractuele vs. buitencontractuele aansprakelijkheid.", 14},
				{"Verzekeringen voor ondernemers", "Welke verzekeringen heb je nodig?", 11},
				{"Beperken van aansprakelijkheid", "Juridische strategieën om je risico te beperken.", 13},
			},
		},
		{
			title: "Module 4: Privacy en AVG",
			lessons: []lessonSeed{
				{"AVG Basisprincipes", "De belangrijkste regels van de AVG.", 16},
				{"Privacyverklaring opstellen", "Stap voor stap een goede privacyverklaring maken.", 10},
				{"Datalekken en meldplicht", "Wat te doen bij een datalek?", 9},
			},
		},
	},
}

func main() {
	env.SetupEnvFile()
	database.SetupDatabase()
	db := database.GetDB()

	log.Println("Seeding database...")

	var courseCount int64
	if err := db.Model(&models.Course{}).Count(&courseCount).Error; err != nil {
		log.Fatalf("Failed to check existing courses: %v", err)
	}
	if courseCount > 0 {
		log.Println("Database already seeded, skipping...")
		return
	}

	course := models.Course{
		Title:       courseSeed.title,
		Description: courseSeed.description,
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("Failed to create course: %v", err)
	}
	log.Printf("Created course: %s", course.Title)

	lessonCount := 0
	for i, ms := range courseSeed.modules {
		module := models.CourseModule{
			CourseID:  course.ID,
			Title:     ms.title,
			SortOrder: i + 1,
		}
		if err := db.Create(&module).Error; err != nil {
			log.Fatalf("Failed to create module %q: %v", ms.title, err)
		}

		for j, ls := range ms.lessons {
			lesson := models.Lesson{
				ModuleID:        module.ID,
				Title:           ls.title,
				Description:     ls.description,
				VimeoID:         seedVimeoID,
				SortOrder:       j + 1,
				DurationMinutes: ls.duration,
			}
			if err := db.Create(&lesson).Error; err != nil {
				log.Fatalf("Failed to create lesson %q: %v", ls.title, err)
			}
			lessonCount++
		}
	}

	log.Printf("Created %d modules and %d lessons", len(courseSeed.modules), lessonCount)
	log.Println("Seeding complete!")
}
