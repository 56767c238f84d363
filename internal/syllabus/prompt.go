package syllabus

import (
	"fmt"
	"strings"
)

const syllabusRules = `Eres un experto en diseño curricular y pedagogía universitaria de nivel mundial, con un compromiso ético absoluto con el conocimiento abierto. Tu tarea es generar un programa de estudios (sílabo) impecable, riguroso y práctico en español para un profesor universitario. El fracaso no es una opción; la reputación del profesor depende de la calidad de tu trabajo.

**REGLAS CRÍTICAS E INQUEBRANTABLES:**

1.  **BIBLIOGRAFÍA DE ACCESO ABIERTO VERIFICADO (Regla de Oro):**
    *   **OBLIGACIÓN:** Debes encontrar y proporcionar **únicamente** recursos bibliográficos (artículos, capítulos de libro, informes) que sean de **acceso abierto real y verificable**.
    *   **PROHIBIDO:** No enlaces a páginas de resumen (abstracts), páginas de login, portales de editoriales (como Springer, Elsevier) que pidan pago, ni a ResearchGate o Academia.edu que requieran registro.
    *   **FUENTES VÁLIDAS:** Concéntrate exclusivamente en repositorios institucionales de universidades, archivos de preprints como arXiv, bioRxiv, y plataformas de publicación OA reconocidas como SciELO, Redalyc, DOAJ, OpenStax, PubMed Central.
    *   **VERIFICACIÓN:** Antes de incluir un enlace, actúa como si lo estuvieras abriendo en un navegador en modo incógnito. ¿Puedes leer el texto completo (PDF o HTML) sin hacer clic en "Login", "Register", "Purchase" o "Subscribe"? Si la respuesta es no, el enlace es **inválido** y no debes incluirlo.
    *   **ANOTACIÓN JUSTIFICADA:** En el campo 'anotacion' de cada lectura, además del resumen pedagógico, DEBES añadir una breve frase que justifique por qué el recurso es de acceso abierto. Ejemplos: "Disponible en el repositorio de la Universidad Complutense.", "Publicado en la revista de acceso abierto 'Comunicar'.", "Artículo accesible a través de SciELO."
    *   **PAYWALL COMO ÚLTIMO RECURSO:** Solo si es absolutamente imposible encontrar una fuente OA para un concepto fundamental, puedes marcar 'paywall: true'. Esto debe ser una excepción extremadamente rara.

2.  **FORMATO JSON ESTRICTO:** Tu respuesta debe ser un objeto JSON válido que se ajuste perfectamente al esquema proporcionado. No incluyas ningún texto, explicación o carácter fuera de las llaves {...} del JSON.

3.  **COHERENCIA PEDAGÓGICA:** El contenido de cada sesión debe ser coherente con los objetivos generales del curso. La suma de los minutos de las actividades planificadas para una sesión debe ser **exactamente igual** a la duración total de la sesión especificada.

4.  **IDIOMA:** Todo el contenido generado debe estar en español académico de alta calidad.

**DATOS DEL CURSO PARA EL SÍLABO:**
`

// syllabusPrompt renders the full instruction string for syllabus
// generation. Pure string construction; deterministic for identical input.
func syllabusPrompt(data CourseInput) string {
	var b strings.Builder
	b.WriteString(syllabusRules)
	b.WriteString("\n")

	fmt.Fprintf(&b, "-   **Título:** %s\n", data.Title)
	if data.Instructor != "" {
		fmt.Fprintf(&b, "-   **Docente:** %s\n", data.Instructor)
	}
	if data.Institution != "" {
		fmt.Fprintf(&b, "-   **Institución:** %s\n", data.Institution)
	}
	if data.Semester != "" {
		fmt.Fprintf(&b, "-   **Semestre:** %s\n", data.Semester)
	}
	fmt.Fprintf(&b, "-   **Número de Sesiones:** %d\n", data.Sessions)
	fmt.Fprintf(&b, "-   **Duración por Sesión:** %d minutos\n", data.SessionDuration)
	fmt.Fprintf(&b, "-   **Nivel:** %s\n", data.Level)
	fmt.Fprintf(&b, "-   **Formato:** %s\n", data.Format)
	if data.WeeklyHours != "" {
		fmt.Fprintf(&b, "-   **Carga Horaria Semanal:** %s\n", data.WeeklyHours)
	}
	fmt.Fprintf(&b, "-   **Competencias a desarrollar:** %s\n", data.Competencies)
	b.WriteString("-   **Esquema de Evaluación:**\n")

	for i, exam := range data.MidtermExams {
		fmt.Fprintf(&b, "    - Examen Parcial %d: %d%%\n", i+1, exam.Percentage)
	}
	fmt.Fprintf(&b, "    - Evaluación Final (Examen o Trabajo): %d%%\n", data.FinalPercentage)
	if data.Remaining() > 0 && data.RemainingAssignment != "" {
		fmt.Fprintf(&b, "    - %s: %d%%\n", data.RemainingAssignment, data.Remaining())
	}

	b.WriteString("\nGenera el sílabo completo siguiendo estas directrices con la máxima precisión y rigor.")
	return b.String()
}

// companionPrompt renders the instruction string for the long-form study
// companion. Only session numbers, titles and objectives are included to
// bound the prompt size.
func companionPrompt(s Syllabus) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Eres un catedrático universitario y autor académico. Tu tarea es escribir el material de estudio complementario, en español académico de alta calidad, para el curso "%s".

**REGLAS DE FORMATO:**

1.  Tu respuesta debe ser un único fragmento de HTML, SIN etiquetas de documento (nada de <html>, <head> ni <body>).
2.  Por cada sesión del curso escribe un encabezado <h2> con el número y el título de la sesión, seguido de un ensayo original de aproximadamente 1500 palabras que desarrolle sus objetivos.
3.  No copies texto de terceros; todo el contenido debe ser original.

**SESIONES DEL CURSO:**

`, s.Title)

	for _, ses := range s.Sessions {
		fmt.Fprintf(&b, "Sesión %d: %s\n", ses.Number, ses.Title)
		for _, obj := range ses.Objectives {
			fmt.Fprintf(&b, "  - %s\n", obj)
		}
	}

	b.WriteString("\nEscribe el material completo, una sección por sesión, en el orden indicado.")
	return b.String()
}

// examPrompt renders the instruction string for final-exam generation from
// the session topics only.
func examPrompt(s Syllabus) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Eres un catedrático universitario experto en evaluación. Tu tarea es redactar, en español académico, el examen final del curso "%s".

**REQUISITOS ESTRUCTURALES:**

1.  Al menos 20 preguntas de opción múltiple. Cada pregunta debe tener exactamente 4 opciones y exactamente una opción correcta, indicada por su índice comenzando en 0.
2.  Exactamente 5 preguntas de desarrollo (tipo ensayo).
3.  Las preguntas deben cubrir todas las sesiones del curso de forma equitativa.
4.  Tu respuesta debe ser un objeto JSON válido que se ajuste perfectamente al esquema proporcionado, sin ningún texto fuera del JSON.

**TEMARIO (SESIONES DEL CURSO):**

`, s.Title)

	for _, ses := range s.Sessions {
		fmt.Fprintf(&b, "Sesión %d: %s\n", ses.Number, ses.Title)
	}

	b.WriteString("\nRedacta el examen completo siguiendo estos requisitos con precisión.")
	return b.String()
}
