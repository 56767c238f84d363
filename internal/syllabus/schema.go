package syllabus

import "github.com/silabogen/silabogen/internal/ai"

// Output-shape descriptors for the two structured generation kinds. Field
// descriptions steer the model; the companion document has no schema, it is
// requested as free-form HTML.

var readingSchema = &ai.Schema{
	Type: ai.TypeObject,
	Properties: map[string]*ai.Schema{
		"citaAPA": {
			Type:        ai.TypeString,
			Description: "La cita completa de la lectura en formato APA 7.",
		},
		"url": {
			Type:        ai.TypeString,
			Description: "El enlace URL directo y funcional al recurso de acceso abierto (PDF o HTML). DEBE ser un enlace que lleve directamente al contenido completo, no a una página de resumen o 'abstract'.",
		},
		"doi": {
			Type:        ai.TypeString,
			Description: "El DOI del artículo, si está disponible.",
		},
		"anotacion": {
			Type:        ai.TypeString,
			Description: "Una anotación de 1-3 líneas resumiendo la utilidad pedagógica de la lectura para la sesión. Incluir una breve justificación de por qué se considera de acceso abierto (ej. 'publicado en SciELO', 'repositorio de la Universidad X').",
		},
		"paywall": {
			Type:        ai.TypeBoolean,
			Description: "Debe ser `false` por defecto. Marcar como `true` ÚNICAMENTE como último recurso absoluto si, tras una búsqueda exhaustiva en repositorios OA, no se encuentra una alternativa viable y el recurso más pertinente está detrás de un muro de pago.",
		},
	},
	Required: []string{"citaAPA", "url", "anotacion", "paywall"},
}

var sessionSchema = &ai.Schema{
	Type: ai.TypeObject,
	Properties: map[string]*ai.Schema{
		"numero": {
			Type:        ai.TypeInteger,
			Description: "El número de la sesión, comenzando en 1.",
		},
		"titulo": {
			Type:        ai.TypeString,
			Description: "Un título temático y conciso para la sesión.",
		},
		"objetivos": {
			Type:        ai.TypeArray,
			Items:       &ai.Schema{Type: ai.TypeString},
			Description: "Una lista de 2-3 objetivos de aprendizaje específicos para esta sesión.",
		},
		"actividades": {
			Type: ai.TypeArray,
			Items: &ai.Schema{
				Type: ai.TypeObject,
				Properties: map[string]*ai.Schema{
					"nombre": {
						Type:        ai.TypeString,
						Description: "Nombre de la actividad (ej. 'Clase magistral', 'Discusión en grupo', 'Ejercicio práctico').",
					},
					"minutos": {
						Type:        ai.TypeInteger,
						Description: "Duración de la actividad en minutos.",
					},
					"descripcion": {
						Type:        ai.TypeString,
						Description: "Breve descripción de la actividad.",
					},
				},
				Required: []string{"nombre", "minutos", "descripcion"},
			},
			Description: "Desglose de las actividades de la sesión. La suma de los minutos debe ser igual a la duración total de la sesión.",
		},
		"lecturas": {
			Type:        ai.TypeArray,
			Items:       readingSchema,
			Description: "Una lista de lecturas asignadas. Priorizar fuertemente artículos, capítulos de libros o informes de acceso abierto verificable.",
		},
	},
	Required: []string{"numero", "titulo", "objetivos", "actividades"},
}

var syllabusSchema = &ai.Schema{
	Type: ai.TypeObject,
	Properties: map[string]*ai.Schema{
		"titulo": {
			Type:        ai.TypeString,
			Description: "El título completo del curso.",
		},
		"descripcion": {
			Type:        ai.TypeString,
			Description: "Un párrafo breve que describa el curso, sus temas principales y su enfoque.",
		},
		"objetivos": {
			Type:        ai.TypeArray,
			Items:       &ai.Schema{Type: ai.TypeString},
			Description: "Una lista de 3 a 5 objetivos de aprendizaje clave que los estudiantes alcanzarán al final del curso.",
		},
		"competencias": {
			Type:        ai.TypeArray,
			Items:       &ai.Schema{Type: ai.TypeString},
			Description: "Una lista de 3 a 5 competencias específicas que los estudiantes desarrollarán.",
		},
		"evaluacion": {
			Type: ai.TypeArray,
			Items: &ai.Schema{
				Type: ai.TypeObject,
				Properties: map[string]*ai.Schema{
					"tipo": {
						Type:        ai.TypeString,
						Description: "El tipo de evaluación (ej. 'Examen Parcial 1', 'Trabajo Final').",
					},
					"porcentaje": {
						Type:        ai.TypeInteger,
						Description: "El peso porcentual de esta evaluación.",
					},
				},
				Required: []string{"tipo", "porcentaje"},
			},
			Description: "Una lista de todos los componentes de la evaluación con sus porcentajes.",
		},
		"sesiones": {
			Type:        ai.TypeArray,
			Items:       sessionSchema,
			Description: "Un array que contiene el plan detallado para cada una de las sesiones del curso.",
		},
	},
	Required: []string{"titulo", "descripcion", "objetivos", "competencias", "evaluacion", "sesiones"},
}

var examSchema = &ai.Schema{
	Type: ai.TypeObject,
	Properties: map[string]*ai.Schema{
		"preguntas": {
			Type: ai.TypeArray,
			Items: &ai.Schema{
				Type: ai.TypeObject,
				Properties: map[string]*ai.Schema{
					"pregunta": {
						Type:        ai.TypeString,
						Description: "El enunciado de la pregunta de opción múltiple.",
					},
					"opciones": {
						Type:        ai.TypeArray,
						Items:       &ai.Schema{Type: ai.TypeString},
						Description: "Exactamente 4 opciones de respuesta.",
					},
					"respuestaCorrecta": {
						Type:        ai.TypeInteger,
						Description: "El índice de la opción correcta, comenzando en 0.",
					},
				},
				Required: []string{"pregunta", "opciones", "respuestaCorrecta"},
			},
			Description: "Al menos 20 preguntas de opción múltiple que cubran todas las sesiones de forma equitativa.",
		},
		"desarrollo": {
			Type:        ai.TypeArray,
			Items:       &ai.Schema{Type: ai.TypeString},
			Description: "Exactamente 5 preguntas de desarrollo (tipo ensayo).",
		},
	},
	Required: []string{"preguntas", "desarrollo"},
}
