// Package atoms reads the ATOM records from a file in mmcif format.
//
// We do not parse the general cif grammar. The pdb promises that in
// the ATOM records they will restrict themselves to a certain style.
// The columns always appear, in the same order,
//
//	group_PDB id type_symbol label_atom_id label_alt_id label_comp_id
//	label_asym_id label_entity_id label_seq_id pdbx_PDB_ins_code
//	Cartn_x Cartn_y Cartn_z occupancy B_iso_or_equiv pdbx_formal_charge
//	auth_seq_id auth_comp_id auth_asym_id auth_atom_id
//	pdbx_PDB_model_num
//
// so a line can be treated as white space separated words at fixed
// positions. That is the whole trick.
//
// Notes about the format. A question mark, ?, means a missing value
// and a dot, ., means not appropriate or deliberately left out. Both
// turn up in numeric columns, so conversions are allowed to fail.
// When one fails, the field keeps its zero value and we move on. A
// coordinate file with one mangled field is still worth reading, and
// the people downstream would rather have the other million atoms
// than an error.
//
// Quoted values with spaces inside them are not handled. In the atom
// table they do not appear in practice, and handling them would drag
// in most of the cif grammar. If you need the rest of the file, use
// a real cif reader.
package atoms
