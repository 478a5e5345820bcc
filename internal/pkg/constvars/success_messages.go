package constvars

// Notice titles shown by the admin agenda.
const (
	TituloAviso         = "Aviso"
	TituloExito         = "Éxito"
	TituloErrorCarga    = "Error de Carga"
	TituloErrorGuardar  = "Error al Guardar"
	TituloErrorEliminar = "Error al Eliminar"
	TituloErrorCancelar = "Error al Cancelar"
	TituloError         = "Error"
)

const (
	ResponseUnknown = "unknown"

	// Agenda messages
	AgendaGetSuccess       = "agenda retrieved successfully"
	CitaCreatedSuccess     = "Cita guardada exitosamente."
	CitaUpdatedSuccess     = "Cita actualizada exitosamente."
	CitaDeletedSuccessFmt  = `Cita para "%s" eliminada exitosamente.`
	CitaCompletadaFmt      = "Cita #%s marcada como Completada."
	CitaCanceladaFmt       = `Cita #%s para "%s" ha sido cancelada.`
	AgendaMutationAccepted = "agenda operation processed"
	WorkflowClosedSuccess  = "workflows closed"
	WorkflowOpenedSuccess  = "workflow opened"
	CatalogoGetSuccess     = "catalogo retrieved successfully"
	BitacoraGetSuccess     = "bitacora retrieved successfully"
)
