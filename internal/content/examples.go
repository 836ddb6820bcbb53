package content

import "github.com/lessonforge/backend/internal/models"

// ExampleLessons returns the demo lessons used to seed an empty store
func ExampleLessons() []models.CreateLessonInput {
	return []models.CreateLessonInput{
		{
			CreateLessonRequest: models.CreateLessonRequest{
				Topic:       "Introduction to Photosynthesis",
				GradeLevel:  models.GradeLevelMiddle,
				LessonStyle: models.LessonStyleExploratory,
				IncludeQuiz: true,
			},
			Content: photosynthesisContent,
			Quiz: []models.QuizQuestion{
				{
					Question:      "What is the primary pigment in plants that captures light energy?",
					Options:       []string{"Melanin", "Chlorophyll", "Hemoglobin", "Carotene"},
					CorrectAnswer: 1,
				},
				{
					Question:      "Which gas is produced during photosynthesis?",
					Options:       []string{"Carbon Dioxide", "Nitrogen", "Oxygen", "Hydrogen"},
					CorrectAnswer: 2,
				},
				{
					Question:      "Where does the light-independent reaction take place in the chloroplast?",
					Options:       []string{"Thylakoid membrane", "Cell wall", "Stroma", "Mitochondria"},
					CorrectAnswer: 2,
				},
			},
		},
		{
			CreateLessonRequest: models.CreateLessonRequest{
				Topic:       "Introduction to Fractions",
				GradeLevel:  models.GradeLevelElementary,
				LessonStyle: models.LessonStylePractical,
				IncludeQuiz: true,
			},
			Content: fractionsContent,
			Quiz: []models.QuizQuestion{
				{
					Question:      "In the fraction 5/8, what is the denominator?",
					Options:       []string{"5", "8", "13", "40"},
					CorrectAnswer: 1,
				},
				{
					Question:      "Which of these is an improper fraction?",
					Options:       []string{"3/4", "2/5", "7/6", "1/2"},
					CorrectAnswer: 2,
				},
				{
					Question:      "Which fraction is equivalent to 1/2?",
					Options:       []string{"2/5", "3/5", "2/6", "3/6"},
					CorrectAnswer: 3,
				},
			},
		},
	}
}

const photosynthesisContent = `<h2>Introduction to Photosynthesis</h2>
<p>Photosynthesis is the process by which plants, algae, and some bacteria convert light energy, usually from the sun, into chemical energy in the form of glucose or other sugars.</p>

<h2>The Process of Photosynthesis</h2>
<p>The process can be summarized by the equation 6CO₂ + 6H₂O + light energy → C₆H₁₂O₆ + 6O₂. Carbon dioxide and water, with the help of light energy, are transformed into glucose and oxygen.</p>

<h2>Why Photosynthesis Matters</h2>
<ul>
  <li>It produces oxygen, which most organisms need to breathe</li>
  <li>It removes carbon dioxide from the atmosphere</li>
  <li>It creates the basis for most food chains on Earth</li>
</ul>

<h2>Parts of a Plant Involved in Photosynthesis</h2>
<p>The primary site of photosynthesis in plants is the leaf. Within the leaf cells are chloroplasts, which contain the green pigment chlorophyll. This pigment captures light energy, the first step of the process.</p>

<h2>Stages of Photosynthesis</h2>
<ul>
  <li><strong>Light-dependent reactions</strong> take place in the thylakoid membrane and convert light energy into chemical energy</li>
  <li><strong>Light-independent reactions</strong> (the Calvin cycle) take place in the stroma and use that chemical energy to produce glucose</li>
</ul>

<h2>Fun Fact</h2>
<p>The oxygen we breathe today was likely produced by photosynthetic organisms like plants and algae. That is why conserving forests and oceans is so important for our planet.</p>`

const fractionsContent = `<h2>Introduction to Fractions</h2>
<p>Fractions are a way of representing parts of a whole. They are very useful in everyday life.</p>

<h2>What is a Fraction?</h2>
<p>A fraction has two parts: the <strong>numerator</strong> (top number) tells us how many parts we have, and the <strong>denominator</strong> (bottom number) tells us how many equal parts the whole is divided into. In 3/4 we have 3 out of 4 equal parts.</p>

<h2>Visual Representation</h2>
<ul>
  <li><strong>Pie model</strong>: a circle divided into equal parts</li>
  <li><strong>Bar model</strong>: a rectangle divided into equal parts</li>
  <li><strong>Number line</strong>: points between whole numbers</li>
</ul>

<h2>Types of Fractions</h2>
<ul>
  <li><strong>Proper fractions</strong>: the numerator is less than the denominator (3/4)</li>
  <li><strong>Improper fractions</strong>: the numerator is greater than or equal to the denominator (5/4)</li>
  <li><strong>Mixed numbers</strong>: a whole number and a proper fraction (1 1/4)</li>
</ul>

<h2>Equivalent Fractions</h2>
<p>Equivalent fractions represent the same value with different numbers, for example 1/2 = 2/4 = 3/6 = 4/8. Multiply or divide both parts by the same number to find one.</p>

<h2>Remember!</h2>
<p>The denominator cannot be zero because you cannot divide something into zero parts.</p>`
