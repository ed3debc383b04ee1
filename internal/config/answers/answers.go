package answers

const (
	Start = "Hola! Este bot calcula el promedio de tus materias y lleva la lista de tus promedios " +
		"para obtener tu promedio general. Información – /help."

	Help = "/calc %Práctico Parcial1 Parcial2 Práctico Mejoramiento – calcular la nota de una materia;\n" +
		"/add Materia Promedio – agregar una materia con su promedio;\n" +
		"/addfull Materia %Práctico Parcial1 Parcial2 Práctico Mejoramiento – agregar una materia calculando su promedio;\n" +
		"/edit N – editar la materia N, luego /add o /addfull;\n" +
		"/cancel – cancelar la edición;\n" +
		"/delete N – eliminar la materia N;\n" +
		"/list – ver materias y promedio general;\n" +
		"/export, /xlsx – exportar la lista. Envía un archivo .html o .xlsx para importarla."

	BotError        = "Ocurrió un error, intenta nuevamente más tarde."
	Default         = "No entiendo el mensaje. Información – /help."
	CalcUsage       = "Formato: /calc %Práctico Parcial1 Parcial2 Práctico Mejoramiento"
	AddUsage        = "Formato: /add Materia Promedio"
	AddFullUsage    = "Formato: /addfull Materia %Práctico Parcial1 Parcial2 Práctico Mejoramiento"
	IndexUsage      = "Indica el número de la materia, por ejemplo: /delete 2"
	IndexOutOfRange = "No existe una materia con ese número. Revisa la lista con /list."
	InvalidForm     = "Datos incompletos: el nombre de la materia es obligatorio."
	MalformedData   = "La lista de materias guardada está dañada."
	EditCancelled   = "Edición cancelada."
	NoCourses       = "Aún no tienes materias. Agrega una con /add o /addfull."
	ImportFailed    = "No se pudo leer el archivo. Envía un .html exportado con /export o un .xlsx exportado con /xlsx."

	Approved    = "Felicitaciones!\nAprobaste"
	NotApproved = "Lo sentimos mucho\nReprobaste"
	FinalGrade  = "Nota final"

	// %s: score, %s: exam.
	ScoreNeededTip = "Necesitas %s en %s para pasar."

	// %d: number, %s: name, %s: gpa.
	EditingCourse = "Editando materia %d: %s (%s). Envía /add o /addfull con los nuevos datos, o /cancel."
	CourseSaved   = "Materia guardada."
	CourseDeleted = "Materia eliminada."

	// %d: count.
	CoursesImported = "Se importaron %d materias."

	GlobalGPA = "Promedio general"
)
