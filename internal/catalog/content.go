package catalog

var builtin = MustNew(
	Section{
		ID:    "overview",
		Title: "Overview",
		Icon:  "book",
		Body:  sectionOverview,
	},
	Section{
		ID:    "basic",
		Title: "Basic Instructions",
		Icon:  "terminal",
		Body:  sectionBasic,
	},
	Section{
		ID:    "memory",
		Title: "Memory Management",
		Icon:  "cpu",
		Body:  sectionMemory,
	},
	Section{
		ID:    "examples",
		Title: "Examples",
		Icon:  "file-code",
		Body:  sectionExamples,
	},
	Section{
		ID:    "errorHandling",
		Title: "Error Handling",
		Icon:  "alert-triangle",
		Body:  sectionErrorHandling,
	},
	Section{
		ID:    "setup",
		Title: "Setup Guide",
		Icon:  "code",
		Body:  sectionSetup,
	},
)

// Builtin returns the RIS documentation shipped with the binary.
func Builtin() *Catalog {
	return builtin
}

const sectionOverview = `RIS is an extended assembly-like language designed for OS development with
support for memory management, process control, file operations, and system
interrupts.

### Key Features

- Memory management with 1MB default space
- Process creation and control
- File system operations
- System interrupts
- Error handling
`

const sectionBasic = "### PRN - Print output\n\n" +
	"```\n" +
	"PRN message     ; Print direct message\n" +
	"PRN $variable   ; Print variable content\n" +
	"```\n\n" +
	"### VAR - Variable operations\n\n" +
	"```\n" +
	"VAR name >> value   ; Set variable\n" +
	"VAR name <<         ; Get input from user\n" +
	"```\n\n" +
	"### HLT - Stop execution\n\n" +
	"```\n" +
	"HLT               ; End program\n" +
	"```\n"

const sectionMemory = "### MEM - Memory operations\n\n" +
	"```\n" +
	"MEM READ address    ; Read from memory address\n" +
	"MEM WRITE address value  ; Write to memory address\n" +
	"MEM SIZE            ; Display memory size\n" +
	"```\n"

const exampleBootloader = `VAR BOOT_MSG >> Initializing RIS OS...
PRN $BOOT_MSG
MEM SIZE
PROC CREATE init
SYS DIR
INT 0
HLT`

const exampleShell = `VAR PROMPT >> RIS>
:loop
PRN $PROMPT
VAR cmd <<
PROC CREATE shell
SYS DIR
INT 0
GOTO loop
HLT`

const exampleMemoryManager = `MEM WRITE 0 255
MEM WRITE 1 128
MEM READ 0
MEM READ 1
INT 1
HLT`

const exampleProcessManager = `PROC CREATE main
PROC CREATE worker1
PROC CREATE worker2
PROC LIST
PROC KILL 2
PROC LIST
HLT`

const sectionExamples = "### Simple Bootloader\n\n```\n" + exampleBootloader + "\n```\n\n" +
	"### Basic Shell\n\n```\n" + exampleShell + "\n```\n\n" +
	"### Memory Manager\n\n```\n" + exampleMemoryManager + "\n```\n\n" +
	"### Process Manager\n\n```\n" + exampleProcessManager + "\n```\n"

const sectionErrorHandling = `The RIS interpreter includes comprehensive error checking for:

- Invalid memory access attempts
- Process management errors
- File operation failures
- System command errors
- Invalid interrupt numbers
`

const sectionSetup = "### Visual Studio 2022\n\n" +
	"1. Create new C++ project\n" +
	"2. Set C++17 or later\n" +
	"3. Include required headers\n" +
	"4. Build solution\n\n" +
	"### VSCode\n\n" +
	"1. Install C/C++ extension\n" +
	"2. Configure c_cpp_properties.json for C++17\n" +
	"3. Set up build tasks\n" +
	"4. Configure debugging\n\n" +
	"### Compilation\n\n" +
	"```\ng++ -std=c++17 ris.cpp -o ris\n```\n\n" +
	"### Running\n\n" +
	"```\n./ris program.ris\n```\n"
