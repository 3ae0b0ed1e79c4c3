// Package console implementa el menú interactivo de texto. Solo consume los
// casos de uso: nunca llega a los repositorios directamente.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tu-usuario/legajos-pro/internal/application/dto"
	"github.com/tu-usuario/legajos-pro/internal/application/usecase"
)

const formatoFecha = "2006-01-02"

// Menu controla el ciclo de lectura de opciones y delega en los casos de uso.
// Entrada y salida son inyectables para poder testearlo con buffers.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	empleados *usecase.EmpleadoUseCase
	legajos   *usecase.LegajoUseCase
}

// NewMenu construye el menú sobre los casos de uso.
func NewMenu(in io.Reader, out io.Writer, empleados *usecase.EmpleadoUseCase, legajos *usecase.LegajoUseCase) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		empleados: empleados,
		legajos:   legajos,
	}
}

// Run ejecuta el bucle del menú hasta que el usuario elige salir o se agota
// la entrada. Los errores se reportan en una línea; el proceso nunca se cae
// por entrada malformada.
func (m *Menu) Run(ctx context.Context) {
	for {
		m.imprimirOpciones()
		opcion, ok := m.leerLinea("Opción: ")
		if !ok {
			return
		}
		switch strings.TrimSpace(opcion) {
		case "1":
			m.crearEmpleado(ctx)
		case "2":
			m.buscarEmpleadoPorID(ctx)
		case "3":
			m.listarEmpleados(ctx)
		case "4":
			m.actualizarArea(ctx)
		case "5":
			m.eliminarEmpleado(ctx)
		case "6":
			m.buscarEmpleadoPorDNI(ctx)
		case "7":
			m.listarLegajos(ctx)
		case "8":
			m.buscarLegajoPorID(ctx)
		case "9":
			m.actualizarCategoriaLegajo(ctx)
		case "10":
			m.cambiarEstadoLegajo(ctx)
		case "11":
			m.eliminarLegajo(ctx)
		case "0":
			fmt.Fprintln(m.out, "Hasta luego.")
			return
		default:
			fmt.Fprintln(m.out, "Opción inválida.")
		}
	}
}

func (m *Menu) imprimirOpciones() {
	fmt.Fprint(m.out, `
===== GESTIÓN DE LEGAJOS =====
 1. Crear empleado
 2. Buscar empleado por ID
 3. Listar empleados activos
 4. Actualizar área de empleado
 5. Eliminar empleado
 6. Buscar empleado por DNI
 7. Listar legajos activos
 8. Buscar legajo por ID
 9. Actualizar categoría de legajo
10. Cambiar estado de legajo
11. Eliminar legajo
 0. Salir
`)
}

// ----- empleados -----

func (m *Menu) crearEmpleado(ctx context.Context) {
	nombre, ok := m.leerLinea("Nombre del empleado: ")
	if !ok {
		return
	}
	apellido, ok := m.leerLinea("Apellido del empleado: ")
	if !ok {
		return
	}
	dni, ok := m.leerLinea("DNI del empleado: ")
	if !ok {
		return
	}

	req := dto.CrearEmpleadoRequest{
		Nombre:       strings.ToUpper(strings.TrimSpace(nombre)),
		Apellido:     strings.ToUpper(strings.TrimSpace(apellido)),
		DNI:          strings.TrimSpace(dni),
		Email:        m.leerOpcional("Email (opcional, Enter para omitir): "),
		Area:         mayusOpcional(m.leerOpcional("Área (opcional, Enter para omitir): ")),
		FechaIngreso: m.leerFechaOpcional("Fecha de ingreso (opcional, formato 2006-01-02, Enter para omitir): "),
	}

	if m.confirmar("¿Desea editar los campos opcionales del legajo? (S/N): ") {
		req.CategoriaLegajo = mayusOpcional(m.leerOpcional("Categoría del legajo (Enter para la categoría por defecto): "))
		req.Observaciones = m.leerOpcional("Observaciones (opcional, Enter para omitir): ")
	}

	empleado, err := m.empleados.Crear(ctx, req)
	if err != nil {
		fmt.Fprintf(m.out, "Error al crear empleado: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Empleado creado exitosamente con ID %d (legajo %s).\n",
		empleado.ID, empleado.Legajo.NroLegajo)
}

func (m *Menu) buscarEmpleadoPorID(ctx context.Context) {
	id, ok := m.leerID("ID del empleado: ")
	if !ok {
		return
	}
	empleado, err := m.empleados.BuscarPorID(ctx, id)
	if err != nil {
		fmt.Fprintf(m.out, "Error al buscar empleado: %v\n", err)
		return
	}
	if empleado == nil {
		fmt.Fprintln(m.out, "No se encontró un empleado con ese ID.")
		return
	}
	m.imprimirEmpleado(empleado)
}

func (m *Menu) listarEmpleados(ctx context.Context) {
	empleados, err := m.empleados.ListarActivos(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error al listar empleados: %v\n", err)
		return
	}
	if len(empleados) == 0 {
		fmt.Fprintln(m.out, "No hay empleados activos.")
		return
	}
	for _, e := range empleados {
		m.imprimirEmpleado(e)
	}
}

func (m *Menu) actualizarArea(ctx context.Context) {
	id, ok := m.leerID("ID del empleado: ")
	if !ok {
		return
	}
	area, ok := m.leerLinea("Nueva área: ")
	if !ok {
		return
	}
	if !m.confirmar("¿Confirma la actualización del área? (S/N): ") {
		fmt.Fprintln(m.out, "Operación cancelada.")
		return
	}
	if err := m.empleados.ActualizarArea(ctx, id, strings.ToUpper(strings.TrimSpace(area))); err != nil {
		fmt.Fprintf(m.out, "Error al actualizar área: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Área actualizada exitosamente.")
}

func (m *Menu) eliminarEmpleado(ctx context.Context) {
	id, ok := m.leerID("ID del empleado a eliminar: ")
	if !ok {
		return
	}
	if !m.confirmar("¿Confirma la eliminación del empleado y su legajo? (S/N): ") {
		fmt.Fprintln(m.out, "Operación cancelada.")
		return
	}
	if err := m.empleados.Eliminar(ctx, id); err != nil {
		fmt.Fprintf(m.out, "Error al eliminar empleado: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Empleado y legajo eliminados exitosamente.")
}

func (m *Menu) buscarEmpleadoPorDNI(ctx context.Context) {
	dni, ok := m.leerLinea("DNI del empleado: ")
	if !ok {
		return
	}
	empleado, err := m.empleados.BuscarPorDNI(ctx, strings.TrimSpace(dni))
	if err != nil {
		fmt.Fprintf(m.out, "Error al buscar empleado: %v\n", err)
		return
	}
	if empleado == nil {
		fmt.Fprintln(m.out, "No se encontró un empleado con ese DNI.")
		return
	}
	m.imprimirEmpleado(empleado)
}

// ----- legajos -----

func (m *Menu) listarLegajos(ctx context.Context) {
	legajos, err := m.legajos.ListarActivos(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error al listar legajos: %v\n", err)
		return
	}
	if len(legajos) == 0 {
		fmt.Fprintln(m.out, "No hay legajos activos.")
		return
	}
	for _, l := range legajos {
		m.imprimirLegajo(l)
	}
}

func (m *Menu) buscarLegajoPorID(ctx context.Context) {
	id, ok := m.leerID("ID del legajo: ")
	if !ok {
		return
	}
	legajo, err := m.legajos.BuscarPorID(ctx, id)
	if err != nil {
		fmt.Fprintf(m.out, "Error al buscar legajo: %v\n", err)
		return
	}
	if legajo == nil {
		fmt.Fprintln(m.out, "No se encontró un legajo con ese ID.")
		return
	}
	m.imprimirLegajo(legajo)
}

func (m *Menu) actualizarCategoriaLegajo(ctx context.Context) {
	id, ok := m.leerID("ID del empleado: ")
	if !ok {
		return
	}
	categoria, ok := m.leerLinea("Nueva categoría: ")
	if !ok {
		return
	}
	if !m.confirmar("¿Confirma la actualización de la categoría? (S/N): ") {
		fmt.Fprintln(m.out, "Operación cancelada.")
		return
	}
	if err := m.empleados.ActualizarCategoriaLegajo(ctx, id, categoria); err != nil {
		fmt.Fprintf(m.out, "Error al actualizar categoría: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Categoría actualizada exitosamente.")
}

func (m *Menu) cambiarEstadoLegajo(ctx context.Context) {
	id, ok := m.leerID("ID del legajo: ")
	if !ok {
		return
	}
	estado, ok := m.leerLinea("Nuevo estado (ACTIVO/INACTIVO): ")
	if !ok {
		return
	}
	if !m.confirmar("¿Confirma el cambio de estado? (S/N): ") {
		fmt.Fprintln(m.out, "Operación cancelada.")
		return
	}
	if err := m.legajos.CambiarEstado(ctx, id, estado); err != nil {
		fmt.Fprintf(m.out, "Error al cambiar estado: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Estado actualizado exitosamente.")
}

func (m *Menu) eliminarLegajo(ctx context.Context) {
	id, ok := m.leerID("ID del legajo a eliminar: ")
	if !ok {
		return
	}
	if !m.confirmar("¿Confirma la eliminación del legajo? (S/N): ") {
		fmt.Fprintln(m.out, "Operación cancelada.")
		return
	}
	if err := m.legajos.Eliminar(ctx, id); err != nil {
		fmt.Fprintf(m.out, "Error al eliminar legajo: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Legajo eliminado exitosamente.")
}

// ----- helpers de entrada/salida -----

// leerLinea muestra el prompt y devuelve la línea leída. ok es false cuando
// la entrada se agotó (EOF).
func (m *Menu) leerLinea(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// leerOpcional devuelve nil si el usuario omitió el campo con Enter.
func (m *Menu) leerOpcional(prompt string) *string {
	linea, ok := m.leerLinea(prompt)
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(linea)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// leerFechaOpcional parsea una fecha 2006-01-02; una fecha inválida se
// reporta y se trata como omitida.
func (m *Menu) leerFechaOpcional(prompt string) *time.Time {
	valor := m.leerOpcional(prompt)
	if valor == nil {
		return nil
	}
	fecha, err := time.Parse(formatoFecha, *valor)
	if err != nil {
		fmt.Fprintln(m.out, "Fecha inválida, se omite.")
		return nil
	}
	return &fecha
}

// leerID lee y parsea un ID numérico; la entrada malformada se reporta, no se
// propaga.
func (m *Menu) leerID(prompt string) (int64, bool) {
	linea, ok := m.leerLinea(prompt)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(linea), 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "ID inválido: debe ser un número.")
		return 0, false
	}
	return id, true
}

// confirmar pide una confirmación S/N; cualquier cosa distinta de S es no.
func (m *Menu) confirmar(prompt string) bool {
	linea, ok := m.leerLinea(prompt)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(linea), "S")
}

func (m *Menu) imprimirEmpleado(e *dto.EmpleadoResponse) {
	fmt.Fprintf(m.out, "[%d] %s, %s - DNI %s - Email: %s - Ingreso: %s - Área: %s\n",
		e.ID, e.Apellido, e.Nombre, e.DNI,
		textoOpcional(e.Email), fechaOpcional(e.FechaIngreso), textoOpcional(e.Area))
	if e.Legajo != nil {
		fmt.Fprintf(m.out, "    Legajo %s - Categoría: %s - Estado: %s\n",
			e.Legajo.NroLegajo, e.Legajo.Categoria, e.Legajo.Estado)
	}
}

func (m *Menu) imprimirLegajo(l *dto.LegajoResponse) {
	fmt.Fprintf(m.out, "[%d] Legajo %s - Categoría: %s - Estado: %s - Alta: %s - Observaciones: %s\n",
		l.ID, l.NroLegajo, l.Categoria, l.Estado,
		fechaOpcional(l.FechaAlta), textoOpcional(l.Observaciones))
}

func textoOpcional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func fechaOpcional(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(formatoFecha)
}

func mayusOpcional(s *string) *string {
	if s == nil {
		return nil
	}
	upper := strings.ToUpper(*s)
	return &upper
}
