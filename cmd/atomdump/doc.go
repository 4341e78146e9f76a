/*
Atomdump reads the ATOM records from an mmcif file and prints them.
Compressed (.gz) files are handled without being asked.

By default you get one line per atom with the fields people usually
want to see. The flags change the shape of the output, not what is
parsed.

Usage:

	atomdump [flags] infile

The flags are:

	-c
		Print only the coordinates, one "x y z" line per atom, in
		file order.
	-d
		Print statistics of the distances between consecutive atoms.
		Useful as a quick sanity check. A mean near 1.5 is a well
		behaved backbone, a huge maximum is a chain break or a field
		that failed to convert.
	-j
		Print the whole parse as json, in the shape a host
		environment binding this library would receive, a list of
		per-atom dictionaries plus the atom count.
	-n
		Print only the number of atoms. This does not build any
		records, so it is the fastest way to ask how big a
		structure is.

Lines that are not ATOM records are skipped silently. A field that
cannot be converted to its type comes out as 0 or an empty string,
never as an error.
*/
package main
