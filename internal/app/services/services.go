package services

// Services defined in this package:
// - PersonaService: atomic create/delete of persona+direccion+credencial and
//   joined read operations over the three tables
