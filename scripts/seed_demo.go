// Seeds a demo exam, its question bank and a couple of students, for local
// testing of the submit/fetch flow against an empty database.
//
// Usage: go run scripts/seed_demo.go

package main

import (
	"log"
	"os"

	"exam_platform_backend/internal/config"
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/pkg/database"
	"exam_platform_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	var count int64
	db.Model(&model.Exam{}).Count(&count)
	if count > 0 {
		log.Println("exams already present, nothing to seed")
		return
	}

	studentRepo := repository.NewStudentRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	examRepo := repository.NewExamRepository(db)

	students := []model.Student{
		{Name: "Ana Souza", Email: "ana.souza@example.com"},
		{Name: "Bruno Lima", Email: "bruno.lima@example.com"},
	}
	for i := range students {
		if err := studentRepo.CreateStudent(&students[i]); err != nil {
			log.Fatalf("seed student: %v", err)
		}
	}

	type seedQuestion struct {
		statement string
		correct   int
	}
	seeds := []seedQuestion{
		{statement: "What is 2 + 2?", correct: model.OptionB},
		{statement: "Which planet is closest to the sun?", correct: model.OptionA},
		{statement: "What is the capital of France?", correct: model.OptionC},
	}

	contents := []string{"First", "Second", "Third", "Fourth", "Fifth"}

	exam := &model.Exam{Name: "Demo Exam"}
	for i, sq := range seeds {
		q := model.Question{Statement: sq.statement}
		for opt := model.OptionA; opt <= model.OptionE; opt++ {
			q.Alternatives = append(q.Alternatives, model.Alternative{
				Option:    opt,
				Content:   contents[opt-1],
				IsCorrect: opt == sq.correct,
			})
		}
		if err := questionRepo.CreateQuestion(&q); err != nil {
			log.Fatalf("seed question: %v", err)
		}
		exam.Questions = append(exam.Questions, model.ExamQuestion{
			QuestionID: q.ID,
			Number:     uint(i + 1),
		})
	}

	if err := examRepo.CreateExam(exam); err != nil {
		log.Fatalf("seed exam: %v", err)
	}

	log.Printf("seeded exam %d with %d questions and %d students", exam.ID, len(exam.Questions), len(students))
}
