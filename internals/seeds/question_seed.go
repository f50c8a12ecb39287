package seeds

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"rupeess_backend/internals/configs"
	"rupeess_backend/internals/features/education/questions/model"
)

// EnsureQuestionFiles menyiapkan data dir + kedua flat file:
// base (seed, ditulis sekali kalau belum ada) dan custom (mulai kosong).
func EnsureQuestionFiles(cfg configs.EducationConfig) {
	if err := os.MkdirAll(filepath.Dir(cfg.BaseFile), 0o755); err != nil {
		log.Printf("[ERROR] Gagal buat data dir: %v", err)
		return
	}

	if _, err := os.Stat(cfg.BaseFile); os.IsNotExist(err) {
		raw, err := json.MarshalIndent(seedBaseQuestions(), "", "  ")
		if err != nil {
			log.Printf("[ERROR] Gagal marshal seed questions: %v", err)
			return
		}
		if err := os.WriteFile(cfg.BaseFile, raw, 0o644); err != nil {
			log.Printf("[ERROR] Gagal tulis base questions: %v", err)
			return
		}
		log.Printf("🌱 Seed base questions ditulis ke %s", cfg.BaseFile)
	}

	if _, err := os.Stat(cfg.CustomFile); os.IsNotExist(err) {
		if err := os.WriteFile(cfg.CustomFile, []byte("[]"), 0o644); err != nil {
			log.Printf("[ERROR] Gagal tulis custom questions: %v", err)
		}
	}
}

func seedBaseQuestions() []model.Question {
	return []model.Question{
		{
			ID:          "hist-1",
			Question:    "Who founded the Maurya Empire",
			Options:     []string{"Ashoka", "Chandragupta Maurya", "Bindusara", "Bimbisara"},
			AnswerIndex: 1,
			Subject:     "UPSC - History",
			Translations: &model.Translations{Hi: &model.Translation{
				Question: "मौर्य साम्राज्य की स्थापना किसने की",
				Options:  []string{"अशोक", "चंद्रगुप्त मौर्य", "बिंदुसार", "बिम्बिसार"},
			}},
		},
		{
			ID:          "hist-2",
			Question:    "In which year did the Battle of Plassey take place",
			Options:     []string{"1757", "1761", "1764", "1772"},
			AnswerIndex: 0,
			Subject:     "UPSC - History",
		},
		{
			ID:          "pol-1",
			Question:    "Who is the head of the Union executive in India",
			Options:     []string{"Prime Minister", "President", "Chief Justice", "Speaker"},
			AnswerIndex: 1,
			Subject:     "UPSC - Polity",
			Translations: &model.Translations{Hi: &model.Translation{
				Question: "भारत में संघ की कार्यपालिका का प्रमुख कौन है",
				Options:  []string{"प्रधानमंत्री", "राष्ट्रपति", "मुख्य न्यायाधीश", "अध्यक्ष"},
			}},
		},
		{
			ID:          "pol-2",
			Question:    "How many fundamental rights does the Indian Constitution guarantee",
			Options:     []string{"5", "6", "7", "8"},
			AnswerIndex: 1,
			Subject:     "UPSC - Polity",
		},
		{
			ID:          "m10-1",
			Question:    "What is the value of sin 90°",
			Options:     []string{"0", "1/2", "1", "√3/2"},
			AnswerIndex: 2,
			Subject:     "Class 10 - Maths",
		},
		{
			ID:          "s10-1",
			Question:    "What is the chemical formula of common salt",
			Options:     []string{"NaCl", "KCl", "CaCl2", "NaOH"},
			AnswerIndex: 0,
			Subject:     "Class 10 - Science",
		},
		{
			ID:          "m9-1",
			Question:    "What is the degree of the polynomial x³ + 2x + 1",
			Options:     []string{"1", "2", "3", "0"},
			AnswerIndex: 2,
			Subject:     "Class 9 - Maths",
		},
		{
			ID:          "s9-1",
			Question:    "Which cell organelle is called the powerhouse of the cell",
			Options:     []string{"Nucleus", "Ribosome", "Mitochondria", "Golgi body"},
			AnswerIndex: 2,
			Subject:     "Class 9 - Science",
		},
	}
}
