package atomdump

// Export run so the tests do not have to fake os.Args.

var Run = run
