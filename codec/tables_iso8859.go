package codec

// The iso-8859 family code page tables.

var iso8859_1Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x00A1, "Inverted Exclamation Mark"},
	{0xA2, 0x00A2, "Cent Sign"},
	{0xA3, 0x00A3, "Pound Sign"},
	{0xA4, 0x00A4, "Currency Sign"},
	{0xA5, 0x00A5, "Yen Sign"},
	{0xA6, 0x00A6, "Broken Bar"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x00A8, "Diaeresis"},
	{0xA9, 0x00A9, "Copyright Sign"},
	{0xAA, 0x00AA, "Feminine Ordinal Indicator"},
	{0xAB, 0x00AB, "Left-Pointing Double Angle Quotation Mark"},
	{0xAC, 0x00AC, "Not Sign"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x00AE, "Registered Sign"},
	{0xAF, 0x00AF, "Macron"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x00B1, "Plus-Minus Sign"},
	{0xB2, 0x00B2, "Superscript Two"},
	{0xB3, 0x00B3, "Superscript Three"},
	{0xB4, 0x00B4, "Acute Accent"},
	{0xB5, 0x00B5, "Micro Sign"},
	{0xB6, 0x00B6, "Pilcrow Sign"},
	{0xB7, 0x00B7, "Middle Dot"},
	{0xB8, 0x00B8, "Cedilla"},
	{0xB9, 0x00B9, "Superscript One"},
	{0xBA, 0x00BA, "Masculine Ordinal Indicator"},
	{0xBB, 0x00BB, "Right-Pointing Double Angle Quotation Mark"},
	{0xBC, 0x00BC, "Vulgar Fraction One Quarter"},
	{0xBD, 0x00BD, "Vulgar Fraction One Half"},
	{0xBE, 0x00BE, "Vulgar Fraction Three Quarters"},
	{0xBF, 0x00BF, "Inverted Question Mark"},
	{0xC0, 0x00C0, "Latin Capital Letter A With Grave"},
	{0xC1, 0x00C1, "Latin Capital Letter A With Acute"},
	{0xC2, 0x00C2, "Latin Capital Letter A With Circumflex"},
	{0xC3, 0x00C3, "Latin Capital Letter A With Tilde"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x00C5, "Latin Capital Letter A With Ring Above"},
	{0xC6, 0x00C6, "Latin Capital Letter Ae"},
	{0xC7, 0x00C7, "Latin Capital Letter C With Cedilla"},
	{0xC8, 0x00C8, "Latin Capital Letter E With Grave"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x00CA, "Latin Capital Letter E With Circumflex"},
	{0xCB, 0x00CB, "Latin Capital Letter E With Diaeresis"},
	{0xCC, 0x00CC, "Latin Capital Letter I With Grave"},
	{0xCD, 0x00CD, "Latin Capital Letter I With Acute"},
	{0xCE, 0x00CE, "Latin Capital Letter I With Circumflex"},
	{0xCF, 0x00CF, "Latin Capital Letter I With Diaeresis"},
	{0xD0, 0x00D0, "Latin Capital Letter Eth"},
	{0xD1, 0x00D1, "Latin Capital Letter N With Tilde"},
	{0xD2, 0x00D2, "Latin Capital Letter O With Grave"},
	{0xD3, 0x00D3, "Latin Capital Letter O With Acute"},
	{0xD4, 0x00D4, "Latin Capital Letter O With Circumflex"},
	{0xD5, 0x00D5, "Latin Capital Letter O With Tilde"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x00D7, "Multiplication Sign"},
	{0xD8, 0x00D8, "Latin Capital Letter O With Stroke"},
	{0xD9, 0x00D9, "Latin Capital Letter U With Grave"},
	{0xDA, 0x00DA, "Latin Capital Letter U With Acute"},
	{0xDB, 0x00DB, "Latin Capital Letter U With Circumflex"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x00DD, "Latin Capital Letter Y With Acute"},
	{0xDE, 0x00DE, "Latin Capital Letter Thorn"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x00E0, "Latin Small Letter A With Grave"},
	{0xE1, 0x00E1, "Latin Small Letter A With Acute"},
	{0xE2, 0x00E2, "Latin Small Letter A With Circumflex"},
	{0xE3, 0x00E3, "Latin Small Letter A With Tilde"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x00E5, "Latin Small Letter A With Ring Above"},
	{0xE6, 0x00E6, "Latin Small Letter Ae"},
	{0xE7, 0x00E7, "Latin Small Letter C With Cedilla"},
	{0xE8, 0x00E8, "Latin Small Letter E With Grave"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x00EA, "Latin Small Letter E With Circumflex"},
	{0xEB, 0x00EB, "Latin Small Letter E With Diaeresis"},
	{0xEC, 0x00EC, "Latin Small Letter I With Grave"},
	{0xED, 0x00ED, "Latin Small Letter I With Acute"},
	{0xEE, 0x00EE, "Latin Small Letter I With Circumflex"},
	{0xEF, 0x00EF, "Latin Small Letter I With Diaeresis"},
	{0xF0, 0x00F0, "Latin Small Letter Eth"},
	{0xF1, 0x00F1, "Latin Small Letter N With Tilde"},
	{0xF2, 0x00F2, "Latin Small Letter O With Grave"},
	{0xF3, 0x00F3, "Latin Small Letter O With Acute"},
	{0xF4, 0x00F4, "Latin Small Letter O With Circumflex"},
	{0xF5, 0x00F5, "Latin Small Letter O With Tilde"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x00F7, "Division Sign"},
	{0xF8, 0x00F8, "Latin Small Letter O With Stroke"},
	{0xF9, 0x00F9, "Latin Small Letter U With Grave"},
	{0xFA, 0x00FA, "Latin Small Letter U With Acute"},
	{0xFB, 0x00FB, "Latin Small Letter U With Circumflex"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x00FD, "Latin Small Letter Y With Acute"},
	{0xFE, 0x00FE, "Latin Small Letter Thorn"},
	{0xFF, 0x00FF, "Latin Small Letter Y With Diaeresis"},
}}

var iso8859_2Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x0104, "Latin Capital Letter A With Ogonek"},
	{0xA2, 0x02D8, "Breve"},
	{0xA3, 0x0141, "Latin Capital Letter L With Stroke"},
	{0xA4, 0x00A4, "Currency Sign"},
	{0xA5, 0x013D, "Latin Capital Letter L With Caron"},
	{0xA6, 0x015A, "Latin Capital Letter S With Acute"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x00A8, "Diaeresis"},
	{0xA9, 0x0160, "Latin Capital Letter S With Caron"},
	{0xAA, 0x015E, "Latin Capital Letter S With Cedilla"},
	{0xAB, 0x0164, "Latin Capital Letter T With Caron"},
	{0xAC, 0x0179, "Latin Capital Letter Z With Acute"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x017D, "Latin Capital Letter Z With Caron"},
	{0xAF, 0x017B, "Latin Capital Letter Z With Dot Above"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x0105, "Latin Small Letter A With Ogonek"},
	{0xB2, 0x02DB, "Ogonek"},
	{0xB3, 0x0142, "Latin Small Letter L With Stroke"},
	{0xB4, 0x00B4, "Acute Accent"},
	{0xB5, 0x013E, "Latin Small Letter L With Caron"},
	{0xB6, 0x015B, "Latin Small Letter S With Acute"},
	{0xB7, 0x02C7, "Caron"},
	{0xB8, 0x00B8, "Cedilla"},
	{0xB9, 0x0161, "Latin Small Letter S With Caron"},
	{0xBA, 0x015F, "Latin Small Letter S With Cedilla"},
	{0xBB, 0x0165, "Latin Small Letter T With Caron"},
	{0xBC, 0x017A, "Latin Small Letter Z With Acute"},
	{0xBD, 0x02DD, "Double Acute Accent"},
	{0xBE, 0x017E, "Latin Small Letter Z With Caron"},
	{0xBF, 0x017C, "Latin Small Letter Z With Dot Above"},
	{0xC0, 0x0154, "Latin Capital Letter R With Acute"},
	{0xC1, 0x00C1, "Latin Capital Letter A With Acute"},
	{0xC2, 0x00C2, "Latin Capital Letter A With Circumflex"},
	{0xC3, 0x0102, "Latin Capital Letter A With Breve"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x0139, "Latin Capital Letter L With Acute"},
	{0xC6, 0x0106, "Latin Capital Letter C With Acute"},
	{0xC7, 0x00C7, "Latin Capital Letter C With Cedilla"},
	{0xC8, 0x010C, "Latin Capital Letter C With Caron"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x0118, "Latin Capital Letter E With Ogonek"},
	{0xCB, 0x00CB, "Latin Capital Letter E With Diaeresis"},
	{0xCC, 0x011A, "Latin Capital Letter E With Caron"},
	{0xCD, 0x00CD, "Latin Capital Letter I With Acute"},
	{0xCE, 0x00CE, "Latin Capital Letter I With Circumflex"},
	{0xCF, 0x010E, "Latin Capital Letter D With Caron"},
	{0xD0, 0x0110, "Latin Capital Letter D With Stroke"},
	{0xD1, 0x0143, "Latin Capital Letter N With Acute"},
	{0xD2, 0x0147, "Latin Capital Letter N With Caron"},
	{0xD3, 0x00D3, "Latin Capital Letter O With Acute"},
	{0xD4, 0x00D4, "Latin Capital Letter O With Circumflex"},
	{0xD5, 0x0150, "Latin Capital Letter O With Double Acute"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x00D7, "Multiplication Sign"},
	{0xD8, 0x0158, "Latin Capital Letter R With Caron"},
	{0xD9, 0x016E, "Latin Capital Letter U With Ring Above"},
	{0xDA, 0x00DA, "Latin Capital Letter U With Acute"},
	{0xDB, 0x0170, "Latin Capital Letter U With Double Acute"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x00DD, "Latin Capital Letter Y With Acute"},
	{0xDE, 0x0162, "Latin Capital Letter T With Cedilla"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x0155, "Latin Small Letter R With Acute"},
	{0xE1, 0x00E1, "Latin Small Letter A With Acute"},
	{0xE2, 0x00E2, "Latin Small Letter A With Circumflex"},
	{0xE3, 0x0103, "Latin Small Letter A With Breve"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x013A, "Latin Small Letter L With Acute"},
	{0xE6, 0x0107, "Latin Small Letter C With Acute"},
	{0xE7, 0x00E7, "Latin Small Letter C With Cedilla"},
	{0xE8, 0x010D, "Latin Small Letter C With Caron"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x0119, "Latin Small Letter E With Ogonek"},
	{0xEB, 0x00EB, "Latin Small Letter E With Diaeresis"},
	{0xEC, 0x011B, "Latin Small Letter E With Caron"},
	{0xED, 0x00ED, "Latin Small Letter I With Acute"},
	{0xEE, 0x00EE, "Latin Small Letter I With Circumflex"},
	{0xEF, 0x010F, "Latin Small Letter D With Caron"},
	{0xF0, 0x0111, "Latin Small Letter D With Stroke"},
	{0xF1, 0x0144, "Latin Small Letter N With Acute"},
	{0xF2, 0x0148, "Latin Small Letter N With Caron"},
	{0xF3, 0x00F3, "Latin Small Letter O With Acute"},
	{0xF4, 0x00F4, "Latin Small Letter O With Circumflex"},
	{0xF5, 0x0151, "Latin Small Letter O With Double Acute"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x00F7, "Division Sign"},
	{0xF8, 0x0159, "Latin Small Letter R With Caron"},
	{0xF9, 0x016F, "Latin Small Letter U With Ring Above"},
	{0xFA, 0x00FA, "Latin Small Letter U With Acute"},
	{0xFB, 0x0171, "Latin Small Letter U With Double Acute"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x00FD, "Latin Small Letter Y With Acute"},
	{0xFE, 0x0163, "Latin Small Letter T With Cedilla"},
	{0xFF, 0x02D9, "Dot Above"},
}}

var iso8859_3Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x0126, "Latin Capital Letter H With Stroke"},
	{0xA2, 0x02D8, "Breve"},
	{0xA3, 0x00A3, "Pound Sign"},
	{0xA4, 0x00A4, "Currency Sign"},
	{0xA6, 0x0124, "Latin Capital Letter H With Circumflex"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x00A8, "Diaeresis"},
	{0xA9, 0x0130, "Latin Capital Letter I With Dot Above"},
	{0xAA, 0x015E, "Latin Capital Letter S With Cedilla"},
	{0xAB, 0x011E, "Latin Capital Letter G With Breve"},
	{0xAC, 0x0134, "Latin Capital Letter J With Circumflex"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAF, 0x017B, "Latin Capital Letter Z With Dot Above"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x0127, "Latin Small Letter H With Stroke"},
	{0xB2, 0x00B2, "Superscript Two"},
	{0xB3, 0x00B3, "Superscript Three"},
	{0xB4, 0x00B4, "Acute Accent"},
	{0xB5, 0x00B5, "Micro Sign"},
	{0xB6, 0x0125, "Latin Small Letter H With Circumflex"},
	{0xB7, 0x00B7, "Middle Dot"},
	{0xB8, 0x00B8, "Cedilla"},
	{0xB9, 0x0131, "Latin Small Letter Dotless I"},
	{0xBA, 0x015F, "Latin Small Letter S With Cedilla"},
	{0xBB, 0x011F, "Latin Small Letter G With Breve"},
	{0xBC, 0x0135, "Latin Small Letter J With Circumflex"},
	{0xBD, 0x00BD, "Vulgar Fraction One Half"},
	{0xBF, 0x017C, "Latin Small Letter Z With Dot Above"},
	{0xC0, 0x00C0, "Latin Capital Letter A With Grave"},
	{0xC1, 0x00C1, "Latin Capital Letter A With Acute"},
	{0xC2, 0x00C2, "Latin Capital Letter A With Circumflex"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x010A, "Latin Capital Letter C With Dot Above"},
	{0xC6, 0x0108, "Latin Capital Letter C With Circumflex"},
	{0xC7, 0x00C7, "Latin Capital Letter C With Cedilla"},
	{0xC8, 0x00C8, "Latin Capital Letter E With Grave"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x00CA, "Latin Capital Letter E With Circumflex"},
	{0xCB, 0x00CB, "Latin Capital Letter E With Diaeresis"},
	{0xCC, 0x00CC, "Latin Capital Letter I With Grave"},
	{0xCD, 0x00CD, "Latin Capital Letter I With Acute"},
	{0xCE, 0x00CE, "Latin Capital Letter I With Circumflex"},
	{0xCF, 0x00CF, "Latin Capital Letter I With Diaeresis"},
	{0xD1, 0x00D1, "Latin Capital Letter N With Tilde"},
	{0xD2, 0x00D2, "Latin Capital Letter O With Grave"},
	{0xD3, 0x00D3, "Latin Capital Letter O With Acute"},
	{0xD4, 0x00D4, "Latin Capital Letter O With Circumflex"},
	{0xD5, 0x0120, "Latin Capital Letter G With Dot Above"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x00D7, "Multiplication Sign"},
	{0xD8, 0x011C, "Latin Capital Letter G With Circumflex"},
	{0xD9, 0x00D9, "Latin Capital Letter U With Grave"},
	{0xDA, 0x00DA, "Latin Capital Letter U With Acute"},
	{0xDB, 0x00DB, "Latin Capital Letter U With Circumflex"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x016C, "Latin Capital Letter U With Breve"},
	{0xDE, 0x015C, "Latin Capital Letter S With Circumflex"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x00E0, "Latin Small Letter A With Grave"},
	{0xE1, 0x00E1, "Latin Small Letter A With Acute"},
	{0xE2, 0x00E2, "Latin Small Letter A With Circumflex"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x010B, "Latin Small Letter C With Dot Above"},
	{0xE6, 0x0109, "Latin Small Letter C With Circumflex"},
	{0xE7, 0x00E7, "Latin Small Letter C With Cedilla"},
	{0xE8, 0x00E8, "Latin Small Letter E With Grave"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x00EA, "Latin Small Letter E With Circumflex"},
	{0xEB, 0x00EB, "Latin Small Letter E With Diaeresis"},
	{0xEC, 0x00EC, "Latin Small Letter I With Grave"},
	{0xED, 0x00ED, "Latin Small Letter I With Acute"},
	{0xEE, 0x00EE, "Latin Small Letter I With Circumflex"},
	{0xEF, 0x00EF, "Latin Small Letter I With Diaeresis"},
	{0xF1, 0x00F1, "Latin Small Letter N With Tilde"},
	{0xF2, 0x00F2, "Latin Small Letter O With Grave"},
	{0xF3, 0x00F3, "Latin Small Letter O With Acute"},
	{0xF4, 0x00F4, "Latin Small Letter O With Circumflex"},
	{0xF5, 0x0121, "Latin Small Letter G With Dot Above"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x00F7, "Division Sign"},
	{0xF8, 0x011D, "Latin Small Letter G With Circumflex"},
	{0xF9, 0x00F9, "Latin Small Letter U With Grave"},
	{0xFA, 0x00FA, "Latin Small Letter U With Acute"},
	{0xFB, 0x00FB, "Latin Small Letter U With Circumflex"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x016D, "Latin Small Letter U With Breve"},
	{0xFE, 0x015D, "Latin Small Letter S With Circumflex"},
	{0xFF, 0x02D9, "Dot Above"},
}}

var iso8859_4Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x0104, "Latin Capital Letter A With Ogonek"},
	{0xA2, 0x0138, "Latin Small Letter Kra"},
	{0xA3, 0x0156, "Latin Capital Letter R With Cedilla"},
	{0xA4, 0x00A4, "Currency Sign"},
	{0xA5, 0x0128, "Latin Capital Letter I With Tilde"},
	{0xA6, 0x013B, "Latin Capital Letter L With Cedilla"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x00A8, "Diaeresis"},
	{0xA9, 0x0160, "Latin Capital Letter S With Caron"},
	{0xAA, 0x0112, "Latin Capital Letter E With Macron"},
	{0xAB, 0x0122, "Latin Capital Letter G With Cedilla"},
	{0xAC, 0x0166, "Latin Capital Letter T With Stroke"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x017D, "Latin Capital Letter Z With Caron"},
	{0xAF, 0x00AF, "Macron"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x0105, "Latin Small Letter A With Ogonek"},
	{0xB2, 0x02DB, "Ogonek"},
	{0xB3, 0x0157, "Latin Small Letter R With Cedilla"},
	{0xB4, 0x00B4, "Acute Accent"},
	{0xB5, 0x0129, "Latin Small Letter I With Tilde"},
	{0xB6, 0x013C, "Latin Small Letter L With Cedilla"},
	{0xB7, 0x02C7, "Caron"},
	{0xB8, 0x00B8, "Cedilla"},
	{0xB9, 0x0161, "Latin Small Letter S With Caron"},
	{0xBA, 0x0113, "Latin Small Letter E With Macron"},
	{0xBB, 0x0123, "Latin Small Letter G With Cedilla"},
	{0xBC, 0x0167, "Latin Small Letter T With Stroke"},
	{0xBD, 0x014A, "Latin Capital Letter Eng"},
	{0xBE, 0x017E, "Latin Small Letter Z With Caron"},
	{0xBF, 0x014B, "Latin Small Letter Eng"},
	{0xC0, 0x0100, "Latin Capital Letter A With Macron"},
	{0xC1, 0x00C1, "Latin Capital Letter A With Acute"},
	{0xC2, 0x00C2, "Latin Capital Letter A With Circumflex"},
	{0xC3, 0x00C3, "Latin Capital Letter A With Tilde"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x00C5, "Latin Capital Letter A With Ring Above"},
	{0xC6, 0x00C6, "Latin Capital Letter Ae"},
	{0xC7, 0x012E, "Latin Capital Letter I With Ogonek"},
	{0xC8, 0x010C, "Latin Capital Letter C With Caron"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x0118, "Latin Capital Letter E With Ogonek"},
	{0xCB, 0x00CB, "Latin Capital Letter E With Diaeresis"},
	{0xCC, 0x0116, "Latin Capital Letter E With Dot Above"},
	{0xCD, 0x00CD, "Latin Capital Letter I With Acute"},
	{0xCE, 0x00CE, "Latin Capital Letter I With Circumflex"},
	{0xCF, 0x012A, "Latin Capital Letter I With Macron"},
	{0xD0, 0x0110, "Latin Capital Letter D With Stroke"},
	{0xD1, 0x0145, "Latin Capital Letter N With Cedilla"},
	{0xD2, 0x014C, "Latin Capital Letter O With Macron"},
	{0xD3, 0x0136, "Latin Capital Letter K With Cedilla"},
	{0xD4, 0x00D4, "Latin Capital Letter O With Circumflex"},
	{0xD5, 0x00D5, "Latin Capital Letter O With Tilde"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x00D7, "Multiplication Sign"},
	{0xD8, 0x00D8, "Latin Capital Letter O With Stroke"},
	{0xD9, 0x0172, "Latin Capital Letter U With Ogonek"},
	{0xDA, 0x00DA, "Latin Capital Letter U With Acute"},
	{0xDB, 0x00DB, "Latin Capital Letter U With Circumflex"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x0168, "Latin Capital Letter U With Tilde"},
	{0xDE, 0x016A, "Latin Capital Letter U With Macron"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x0101, "Latin Small Letter A With Macron"},
	{0xE1, 0x00E1, "Latin Small Letter A With Acute"},
	{0xE2, 0x00E2, "Latin Small Letter A With Circumflex"},
	{0xE3, 0x00E3, "Latin Small Letter A With Tilde"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x00E5, "Latin Small Letter A With Ring Above"},
	{0xE6, 0x00E6, "Latin Small Letter Ae"},
	{0xE7, 0x012F, "Latin Small Letter I With Ogonek"},
	{0xE8, 0x010D, "Latin Small Letter C With Caron"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x0119, "Latin Small Letter E With Ogonek"},
	{0xEB, 0x00EB, "Latin Small Letter E With Diaeresis"},
	{0xEC, 0x0117, "Latin Small Letter E With Dot Above"},
	{0xED, 0x00ED, "Latin Small Letter I With Acute"},
	{0xEE, 0x00EE, "Latin Small Letter I With Circumflex"},
	{0xEF, 0x012B, "Latin Small Letter I With Macron"},
	{0xF0, 0x0111, "Latin Small Letter D With Stroke"},
	{0xF1, 0x0146, "Latin Small Letter N With Cedilla"},
	{0xF2, 0x014D, "Latin Small Letter O With Macron"},
	{0xF3, 0x0137, "Latin Small Letter K With Cedilla"},
	{0xF4, 0x00F4, "Latin Small Letter O With Circumflex"},
	{0xF5, 0x00F5, "Latin Small Letter O With Tilde"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x00F7, "Division Sign"},
	{0xF8, 0x00F8, "Latin Small Letter O With Stroke"},
	{0xF9, 0x0173, "Latin Small Letter U With Ogonek"},
	{0xFA, 0x00FA, "Latin Small Letter U With Acute"},
	{0xFB, 0x00FB, "Latin Small Letter U With Circumflex"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x0169, "Latin Small Letter U With Tilde"},
	{0xFE, 0x016B, "Latin Small Letter U With Macron"},
	{0xFF, 0x02D9, "Dot Above"},
}}

var iso8859_5Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x0401, "Cyrillic Capital Letter Io"},
	{0xA2, 0x0402, "Cyrillic Capital Letter Dje"},
	{0xA3, 0x0403, "Cyrillic Capital Letter Gje"},
	{0xA4, 0x0404, "Cyrillic Capital Letter Ukrainian Ie"},
	{0xA5, 0x0405, "Cyrillic Capital Letter Dze"},
	{0xA6, 0x0406, "Cyrillic Capital Letter Byelorussian-Ukrainian I"},
	{0xA7, 0x0407, "Cyrillic Capital Letter Yi"},
	{0xA8, 0x0408, "Cyrillic Capital Letter Je"},
	{0xA9, 0x0409, "Cyrillic Capital Letter Lje"},
	{0xAA, 0x040A, "Cyrillic Capital Letter Nje"},
	{0xAB, 0x040B, "Cyrillic Capital Letter Tshe"},
	{0xAC, 0x040C, "Cyrillic Capital Letter Kje"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x040E, "Cyrillic Capital Letter Short U"},
	{0xAF, 0x040F, "Cyrillic Capital Letter Dzhe"},
	{0xB0, 0x0410, "Cyrillic Capital Letter A"},
	{0xB1, 0x0411, "Cyrillic Capital Letter Be"},
	{0xB2, 0x0412, "Cyrillic Capital Letter Ve"},
	{0xB3, 0x0413, "Cyrillic Capital Letter Ghe"},
	{0xB4, 0x0414, "Cyrillic Capital Letter De"},
	{0xB5, 0x0415, "Cyrillic Capital Letter Ie"},
	{0xB6, 0x0416, "Cyrillic Capital Letter Zhe"},
	{0xB7, 0x0417, "Cyrillic Capital Letter Ze"},
	{0xB8, 0x0418, "Cyrillic Capital Letter I"},
	{0xB9, 0x0419, "Cyrillic Capital Letter Short I"},
	{0xBA, 0x041A, "Cyrillic Capital Letter Ka"},
	{0xBB, 0x041B, "Cyrillic Capital Letter El"},
	{0xBC, 0x041C, "Cyrillic Capital Letter Em"},
	{0xBD, 0x041D, "Cyrillic Capital Letter En"},
	{0xBE, 0x041E, "Cyrillic Capital Letter O"},
	{0xBF, 0x041F, "Cyrillic Capital Letter Pe"},
	{0xC0, 0x0420, "Cyrillic Capital Letter Er"},
	{0xC1, 0x0421, "Cyrillic Capital Letter Es"},
	{0xC2, 0x0422, "Cyrillic Capital Letter Te"},
	{0xC3, 0x0423, "Cyrillic Capital Letter U"},
	{0xC4, 0x0424, "Cyrillic Capital Letter Ef"},
	{0xC5, 0x0425, "Cyrillic Capital Letter Ha"},
	{0xC6, 0x0426, "Cyrillic Capital Letter Tse"},
	{0xC7, 0x0427, "Cyrillic Capital Letter Che"},
	{0xC8, 0x0428, "Cyrillic Capital Letter Sha"},
	{0xC9, 0x0429, "Cyrillic Capital Letter Shcha"},
	{0xCA, 0x042A, "Cyrillic Capital Letter Hard Sign"},
	{0xCB, 0x042B, "Cyrillic Capital Letter Yeru"},
	{0xCC, 0x042C, "Cyrillic Capital Letter Soft Sign"},
	{0xCD, 0x042D, "Cyrillic Capital Letter E"},
	{0xCE, 0x042E, "Cyrillic Capital Letter Yu"},
	{0xCF, 0x042F, "Cyrillic Capital Letter Ya"},
	{0xD0, 0x0430, "Cyrillic Small Letter A"},
	{0xD1, 0x0431, "Cyrillic Small Letter Be"},
	{0xD2, 0x0432, "Cyrillic Small Letter Ve"},
	{0xD3, 0x0433, "Cyrillic Small Letter Ghe"},
	{0xD4, 0x0434, "Cyrillic Small Letter De"},
	{0xD5, 0x0435, "Cyrillic Small Letter Ie"},
	{0xD6, 0x0436, "Cyrillic Small Letter Zhe"},
	{0xD7, 0x0437, "Cyrillic Small Letter Ze"},
	{0xD8, 0x0438, "Cyrillic Small Letter I"},
	{0xD9, 0x0439, "Cyrillic Small Letter Short I"},
	{0xDA, 0x043A, "Cyrillic Small Letter Ka"},
	{0xDB, 0x043B, "Cyrillic Small Letter El"},
	{0xDC, 0x043C, "Cyrillic Small Letter Em"},
	{0xDD, 0x043D, "Cyrillic Small Letter En"},
	{0xDE, 0x043E, "Cyrillic Small Letter O"},
	{0xDF, 0x043F, "Cyrillic Small Letter Pe"},
	{0xE0, 0x0440, "Cyrillic Small Letter Er"},
	{0xE1, 0x0441, "Cyrillic Small Letter Es"},
	{0xE2, 0x0442, "Cyrillic Small Letter Te"},
	{0xE3, 0x0443, "Cyrillic Small Letter U"},
	{0xE4, 0x0444, "Cyrillic Small Letter Ef"},
	{0xE5, 0x0445, "Cyrillic Small Letter Ha"},
	{0xE6, 0x0446, "Cyrillic Small Letter Tse"},
	{0xE7, 0x0447, "Cyrillic Small Letter Che"},
	{0xE8, 0x0448, "Cyrillic Small Letter Sha"},
	{0xE9, 0x0449, "Cyrillic Small Letter Shcha"},
	{0xEA, 0x044A, "Cyrillic Small Letter Hard Sign"},
	{0xEB, 0x044B, "Cyrillic Small Letter Yeru"},
	{0xEC, 0x044C, "Cyrillic Small Letter Soft Sign"},
	{0xED, 0x044D, "Cyrillic Small Letter E"},
	{0xEE, 0x044E, "Cyrillic Small Letter Yu"},
	{0xEF, 0x044F, "Cyrillic Small Letter Ya"},
	{0xF0, 0x2116, "Numero Sign"},
	{0xF1, 0x0451, "Cyrillic Small Letter Io"},
	{0xF2, 0x0452, "Cyrillic Small Letter Dje"},
	{0xF3, 0x0453, "Cyrillic Small Letter Gje"},
	{0xF4, 0x0454, "Cyrillic Small Letter Ukrainian Ie"},
	{0xF5, 0x0455, "Cyrillic Small Letter Dze"},
	{0xF6, 0x0456, "Cyrillic Small Letter Byelorussian-Ukrainian I"},
	{0xF7, 0x0457, "Cyrillic Small Letter Yi"},
	{0xF8, 0x0458, "Cyrillic Small Letter Je"},
	{0xF9, 0x0459, "Cyrillic Small Letter Lje"},
	{0xFA, 0x045A, "Cyrillic Small Letter Nje"},
	{0xFB, 0x045B, "Cyrillic Small Letter Tshe"},
	{0xFC, 0x045C, "Cyrillic Small Letter Kje"},
	{0xFD, 0x00A7, "Section Sign"},
	{0xFE, 0x045E, "Cyrillic Small Letter Short U"},
	{0xFF, 0x045F, "Cyrillic Small Letter Dzhe"},
}}

var iso8859_6Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA4, 0x00A4, "Currency Sign"},
	{0xAC, 0x060C, "Arabic Comma"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xBB, 0x061B, "Arabic Semicolon"},
	{0xBF, 0x061F, "Arabic Question Mark"},
	{0xC1, 0x0621, "Arabic Letter Hamza"},
	{0xC2, 0x0622, "Arabic Letter Alef With Madda Above"},
	{0xC3, 0x0623, "Arabic Letter Alef With Hamza Above"},
	{0xC4, 0x0624, "Arabic Letter Waw With Hamza Above"},
	{0xC5, 0x0625, "Arabic Letter Alef With Hamza Below"},
	{0xC6, 0x0626, "Arabic Letter Yeh With Hamza Above"},
	{0xC7, 0x0627, "Arabic Letter Alef"},
	{0xC8, 0x0628, "Arabic Letter Beh"},
	{0xC9, 0x0629, "Arabic Letter Teh Marbuta"},
	{0xCA, 0x062A, "Arabic Letter Teh"},
	{0xCB, 0x062B, "Arabic Letter Theh"},
	{0xCC, 0x062C, "Arabic Letter Jeem"},
	{0xCD, 0x062D, "Arabic Letter Hah"},
	{0xCE, 0x062E, "Arabic Letter Khah"},
	{0xCF, 0x062F, "Arabic Letter Dal"},
	{0xD0, 0x0630, "Arabic Letter Thal"},
	{0xD1, 0x0631, "Arabic Letter Reh"},
	{0xD2, 0x0632, "Arabic Letter Zain"},
	{0xD3, 0x0633, "Arabic Letter Seen"},
	{0xD4, 0x0634, "Arabic Letter Sheen"},
	{0xD5, 0x0635, "Arabic Letter Sad"},
	{0xD6, 0x0636, "Arabic Letter Dad"},
	{0xD7, 0x0637, "Arabic Letter Tah"},
	{0xD8, 0x0638, "Arabic Letter Zah"},
	{0xD9, 0x0639, "Arabic Letter Ain"},
	{0xDA, 0x063A, "Arabic Letter Ghain"},
	{0xE0, 0x0640, "Arabic Tatweel"},
	{0xE1, 0x0641, "Arabic Letter Feh"},
	{0xE2, 0x0642, "Arabic Letter Qaf"},
	{0xE3, 0x0643, "Arabic Letter Kaf"},
	{0xE4, 0x0644, "Arabic Letter Lam"},
	{0xE5, 0x0645, "Arabic Letter Meem"},
	{0xE6, 0x0646, "Arabic Letter Noon"},
	{0xE7, 0x0647, "Arabic Letter Heh"},
	{0xE8, 0x0648, "Arabic Letter Waw"},
	{0xE9, 0x0649, "Arabic Letter Alef Maksura"},
	{0xEA, 0x064A, "Arabic Letter Yeh"},
	{0xEB, 0x064B, "Arabic Fathatan"},
	{0xEC, 0x064C, "Arabic Dammatan"},
	{0xED, 0x064D, "Arabic Kasratan"},
	{0xEE, 0x064E, "Arabic Fatha"},
	{0xEF, 0x064F, "Arabic Damma"},
	{0xF0, 0x0650, "Arabic Kasra"},
	{0xF1, 0x0651, "Arabic Shadda"},
	{0xF2, 0x0652, "Arabic Sukun"},
}}

var iso8859_7Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x2018, "Left Single Quotation Mark"},
	{0xA2, 0x2019, "Right Single Quotation Mark"},
	{0xA3, 0x00A3, "Pound Sign"},
	{0xA4, 0x20AC, "Euro Sign"},
	{0xA5, 0x20AF, "Drachma Sign"},
	{0xA6, 0x00A6, "Broken Bar"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x00A8, "Diaeresis"},
	{0xA9, 0x00A9, "Copyright Sign"},
	{0xAA, 0x037A, "Greek Ypogegrammeni"},
	{0xAB, 0x00AB, "Left-Pointing Double Angle Quotation Mark"},
	{0xAC, 0x00AC, "Not Sign"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAF, 0x2015, "Horizontal Bar"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x00B1, "Plus-Minus Sign"},
	{0xB2, 0x00B2, "Superscript Two"},
	{0xB3, 0x00B3, "Superscript Three"},
	{0xB4, 0x0384, "Greek Tonos"},
	{0xB5, 0x0385, "Greek Dialytika Tonos"},
	{0xB6, 0x0386, "Greek Capital Letter Alpha With Tonos"},
	{0xB7, 0x00B7, "Middle Dot"},
	{0xB8, 0x0388, "Greek Capital Letter Epsilon With Tonos"},
	{0xB9, 0x0389, "Greek Capital Letter Eta With Tonos"},
	{0xBA, 0x038A, "Greek Capital Letter Iota With Tonos"},
	{0xBB, 0x00BB, "Right-Pointing Double Angle Quotation Mark"},
	{0xBC, 0x038C, "Greek Capital Letter Omicron With Tonos"},
	{0xBD, 0x00BD, "Vulgar Fraction One Half"},
	{0xBE, 0x038E, "Greek Capital Letter Upsilon With Tonos"},
	{0xBF, 0x038F, "Greek Capital Letter Omega With Tonos"},
	{0xC0, 0x0390, "Greek Small Letter Iota With Dialytika And Tonos"},
	{0xC1, 0x0391, "Greek Capital Letter Alpha"},
	{0xC2, 0x0392, "Greek Capital Letter Beta"},
	{0xC3, 0x0393, "Greek Capital Letter Gamma"},
	{0xC4, 0x0394, "Greek Capital Letter Delta"},
	{0xC5, 0x0395, "Greek Capital Letter Epsilon"},
	{0xC6, 0x0396, "Greek Capital Letter Zeta"},
	{0xC7, 0x0397, "Greek Capital Letter Eta"},
	{0xC8, 0x0398, "Greek Capital Letter Theta"},
	{0xC9, 0x0399, "Greek Capital Letter Iota"},
	{0xCA, 0x039A, "Greek Capital Letter Kappa"},
	{0xCB, 0x039B, "Greek Capital Letter Lamda"},
	{0xCC, 0x039C, "Greek Capital Letter Mu"},
	{0xCD, 0x039D, "Greek Capital Letter Nu"},
	{0xCE, 0x039E, "Greek Capital Letter Xi"},
	{0xCF, 0x039F, "Greek Capital Letter Omicron"},
	{0xD0, 0x03A0, "Greek Capital Letter Pi"},
	{0xD1, 0x03A1, "Greek Capital Letter Rho"},
	{0xD3, 0x03A3, "Greek Capital Letter Sigma"},
	{0xD4, 0x03A4, "Greek Capital Letter Tau"},
	{0xD5, 0x03A5, "Greek Capital Letter Upsilon"},
	{0xD6, 0x03A6, "Greek Capital Letter Phi"},
	{0xD7, 0x03A7, "Greek Capital Letter Chi"},
	{0xD8, 0x03A8, "Greek Capital Letter Psi"},
	{0xD9, 0x03A9, "Greek Capital Letter Omega"},
	{0xDA, 0x03AA, "Greek Capital Letter Iota With Dialytika"},
	{0xDB, 0x03AB, "Greek Capital Letter Upsilon With Dialytika"},
	{0xDC, 0x03AC, "Greek Small Letter Alpha With Tonos"},
	{0xDD, 0x03AD, "Greek Small Letter Epsilon With Tonos"},
	{0xDE, 0x03AE, "Greek Small Letter Eta With Tonos"},
	{0xDF, 0x03AF, "Greek Small Letter Iota With Tonos"},
	{0xE0, 0x03B0, "Greek Small Letter Upsilon With Dialytika And Tonos"},
	{0xE1, 0x03B1, "Greek Small Letter Alpha"},
	{0xE2, 0x03B2, "Greek Small Letter Beta"},
	{0xE3, 0x03B3, "Greek Small Letter Gamma"},
	{0xE4, 0x03B4, "Greek Small Letter Delta"},
	{0xE5, 0x03B5, "Greek Small Letter Epsilon"},
	{0xE6, 0x03B6, "Greek Small Letter Zeta"},
	{0xE7, 0x03B7, "Greek Small Letter Eta"},
	{0xE8, 0x03B8, "Greek Small Letter Theta"},
	{0xE9, 0x03B9, "Greek Small Letter Iota"},
	{0xEA, 0x03BA, "Greek Small Letter Kappa"},
	{0xEB, 0x03BB, "Greek Small Letter Lamda"},
	{0xEC, 0x03BC, "Greek Small Letter Mu"},
	{0xED, 0x03BD, "Greek Small Letter Nu"},
	{0xEE, 0x03BE, "Greek Small Letter Xi"},
	{0xEF, 0x03BF, "Greek Small Letter Omicron"},
	{0xF0, 0x03C0, "Greek Small Letter Pi"},
	{0xF1, 0x03C1, "Greek Small Letter Rho"},
	{0xF2, 0x03C2, "Greek Small Letter Final Sigma"},
	{0xF3, 0x03C3, "Greek Small Letter Sigma"},
	{0xF4, 0x03C4, "Greek Small Letter Tau"},
	{0xF5, 0x03C5, "Greek Small Letter Upsilon"},
	{0xF6, 0x03C6, "Greek Small Letter Phi"},
	{0xF7, 0x03C7, "Greek Small Letter Chi"},
	{0xF8, 0x03C8, "Greek Small Letter Psi"},
	{0xF9, 0x03C9, "Greek Small Letter Omega"},
	{0xFA, 0x03CA, "Greek Small Letter Iota With Dialytika"},
	{0xFB, 0x03CB, "Greek Small Letter Upsilon With Dialytika"},
	{0xFC, 0x03CC, "Greek Small Letter Omicron With Tonos"},
	{0xFD, 0x03CD, "Greek Small Letter Upsilon With Tonos"},
	{0xFE, 0x03CE, "Greek Small Letter Omega With Tonos"},
}}

var iso8859_8Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA2, 0x00A2, "Cent Sign"},
	{0xA3, 0x00A3, "Pound Sign"},
	{0xA4, 0x00A4, "Currency Sign"},
	{0xA5, 0x00A5, "Yen Sign"},
	{0xA6, 0x00A6, "Broken Bar"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x00A8, "Diaeresis"},
	{0xA9, 0x00A9, "Copyright Sign"},
	{0xAA, 0x00D7, "Multiplication Sign"},
	{0xAB, 0x00AB, "Left-Pointing Double Angle Quotation Mark"},
	{0xAC, 0x00AC, "Not Sign"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x00AE, "Registered Sign"},
	{0xAF, 0x00AF, "Macron"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x00B1, "Plus-Minus Sign"},
	{0xB2, 0x00B2, "Superscript Two"},
	{0xB3, 0x00B3, "Superscript Three"},
	{0xB4, 0x00B4, "Acute Accent"},
	{0xB5, 0x00B5, "Micro Sign"},
	{0xB6, 0x00B6, "Pilcrow Sign"},
	{0xB7, 0x00B7, "Middle Dot"},
	{0xB8, 0x00B8, "Cedilla"},
	{0xB9, 0x00B9, "Superscript One"},
	{0xBA, 0x00F7, "Division Sign"},
	{0xBB, 0x00BB, "Right-Pointing Double Angle Quotation Mark"},
	{0xBC, 0x00BC, "Vulgar Fraction One Quarter"},
	{0xBD, 0x00BD, "Vulgar Fraction One Half"},
	{0xBE, 0x00BE, "Vulgar Fraction Three Quarters"},
	{0xDF, 0x2017, "Double Low Line"},
	{0xE0, 0x05D0, "Hebrew Letter Alef"},
	{0xE1, 0x05D1, "Hebrew Letter Bet"},
	{0xE2, 0x05D2, "Hebrew Letter Gimel"},
	{0xE3, 0x05D3, "Hebrew Letter Dalet"},
	{0xE4, 0x05D4, "Hebrew Letter He"},
	{0xE5, 0x05D5, "Hebrew Letter Vav"},
	{0xE6, 0x05D6, "Hebrew Letter Zayin"},
	{0xE7, 0x05D7, "Hebrew Letter Het"},
	{0xE8, 0x05D8, "Hebrew Letter Tet"},
	{0xE9, 0x05D9, "Hebrew Letter Yod"},
	{0xEA, 0x05DA, "Hebrew Letter Final Kaf"},
	{0xEB, 0x05DB, "Hebrew Letter Kaf"},
	{0xEC, 0x05DC, "Hebrew Letter Lamed"},
	{0xED, 0x05DD, "Hebrew Letter Final Mem"},
	{0xEE, 0x05DE, "Hebrew Letter Mem"},
	{0xEF, 0x05DF, "Hebrew Letter Final Nun"},
	{0xF0, 0x05E0, "Hebrew Letter Nun"},
	{0xF1, 0x05E1, "Hebrew Letter Samekh"},
	{0xF2, 0x05E2, "Hebrew Letter Ayin"},
	{0xF3, 0x05E3, "Hebrew Letter Final Pe"},
	{0xF4, 0x05E4, "Hebrew Letter Pe"},
	{0xF5, 0x05E5, "Hebrew Letter Final Tsadi"},
	{0xF6, 0x05E6, "Hebrew Letter Tsadi"},
	{0xF7, 0x05E7, "Hebrew Letter Qof"},
	{0xF8, 0x05E8, "Hebrew Letter Resh"},
	{0xF9, 0x05E9, "Hebrew Letter Shin"},
	{0xFA, 0x05EA, "Hebrew Letter Tav"},
	{0xFD, 0x200E, "Left-To-Right Mark"},
	{0xFE, 0x200F, "Right-To-Left Mark"},
}}

var iso8859_9Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x00A1, "Inverted Exclamation Mark"},
	{0xA2, 0x00A2, "Cent Sign"},
	{0xA3, 0x00A3, "Pound Sign"},
	{0xA4, 0x00A4, "Currency Sign"},
	{0xA5, 0x00A5, "Yen Sign"},
	{0xA6, 0x00A6, "Broken Bar"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x00A8, "Diaeresis"},
	{0xA9, 0x00A9, "Copyright Sign"},
	{0xAA, 0x00AA, "Feminine Ordinal Indicator"},
	{0xAB, 0x00AB, "Left-Pointing Double Angle Quotation Mark"},
	{0xAC, 0x00AC, "Not Sign"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x00AE, "Registered Sign"},
	{0xAF, 0x00AF, "Macron"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x00B1, "Plus-Minus Sign"},
	{0xB2, 0x00B2, "Superscript Two"},
	{0xB3, 0x00B3, "Superscript Three"},
	{0xB4, 0x00B4, "Acute Accent"},
	{0xB5, 0x00B5, "Micro Sign"},
	{0xB6, 0x00B6, "Pilcrow Sign"},
	{0xB7, 0x00B7, "Middle Dot"},
	{0xB8, 0x00B8, "Cedilla"},
	{0xB9, 0x00B9, "Superscript One"},
	{0xBA, 0x00BA, "Masculine Ordinal Indicator"},
	{0xBB, 0x00BB, "Right-Pointing Double Angle Quotation Mark"},
	{0xBC, 0x00BC, "Vulgar Fraction One Quarter"},
	{0xBD, 0x00BD, "Vulgar Fraction One Half"},
	{0xBE, 0x00BE, "Vulgar Fraction Three Quarters"},
	{0xBF, 0x00BF, "Inverted Question Mark"},
	{0xC0, 0x00C0, "Latin Capital Letter A With Grave"},
	{0xC1, 0x00C1, "Latin Capital Letter A With Acute"},
	{0xC2, 0x00C2, "Latin Capital Letter A With Circumflex"},
	{0xC3, 0x00C3, "Latin Capital Letter A With Tilde"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x00C5, "Latin Capital Letter A With Ring Above"},
	{0xC6, 0x00C6, "Latin Capital Letter Ae"},
	{0xC7, 0x00C7, "Latin Capital Letter C With Cedilla"},
	{0xC8, 0x00C8, "Latin Capital Letter E With Grave"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x00CA, "Latin Capital Letter E With Circumflex"},
	{0xCB, 0x00CB, "Latin Capital Letter E With Diaeresis"},
	{0xCC, 0x00CC, "Latin Capital Letter I With Grave"},
	{0xCD, 0x00CD, "Latin Capital Letter I With Acute"},
	{0xCE, 0x00CE, "Latin Capital Letter I With Circumflex"},
	{0xCF, 0x00CF, "Latin Capital Letter I With Diaeresis"},
	{0xD0, 0x011E, "Latin Capital Letter G With Breve"},
	{0xD1, 0x00D1, "Latin Capital Letter N With Tilde"},
	{0xD2, 0x00D2, "Latin Capital Letter O With Grave"},
	{0xD3, 0x00D3, "Latin Capital Letter O With Acute"},
	{0xD4, 0x00D4, "Latin Capital Letter O With Circumflex"},
	{0xD5, 0x00D5, "Latin Capital Letter O With Tilde"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x00D7, "Multiplication Sign"},
	{0xD8, 0x00D8, "Latin Capital Letter O With Stroke"},
	{0xD9, 0x00D9, "Latin Capital Letter U With Grave"},
	{0xDA, 0x00DA, "Latin Capital Letter U With Acute"},
	{0xDB, 0x00DB, "Latin Capital Letter U With Circumflex"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x0130, "Latin Capital Letter I With Dot Above"},
	{0xDE, 0x015E, "Latin Capital Letter S With Cedilla"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x00E0, "Latin Small Letter A With Grave"},
	{0xE1, 0x00E1, "Latin Small Letter A With Acute"},
	{0xE2, 0x00E2, "Latin Small Letter A With Circumflex"},
	{0xE3, 0x00E3, "Latin Small Letter A With Tilde"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x00E5, "Latin Small Letter A With Ring Above"},
	{0xE6, 0x00E6, "Latin Small Letter Ae"},
	{0xE7, 0x00E7, "Latin Small Letter C With Cedilla"},
	{0xE8, 0x00E8, "Latin Small Letter E With Grave"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x00EA, "Latin Small Letter E With Circumflex"},
	{0xEB, 0x00EB, "Latin Small Letter E With Diaeresis"},
	{0xEC, 0x00EC, "Latin Small Letter I With Grave"},
	{0xED, 0x00ED, "Latin Small Letter I With Acute"},
	{0xEE, 0x00EE, "Latin Small Letter I With Circumflex"},
	{0xEF, 0x00EF, "Latin Small Letter I With Diaeresis"},
	{0xF0, 0x011F, "Latin Small Letter G With Breve"},
	{0xF1, 0x00F1, "Latin Small Letter N With Tilde"},
	{0xF2, 0x00F2, "Latin Small Letter O With Grave"},
	{0xF3, 0x00F3, "Latin Small Letter O With Acute"},
	{0xF4, 0x00F4, "Latin Small Letter O With Circumflex"},
	{0xF5, 0x00F5, "Latin Small Letter O With Tilde"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x00F7, "Division Sign"},
	{0xF8, 0x00F8, "Latin Small Letter O With Stroke"},
	{0xF9, 0x00F9, "Latin Small Letter U With Grave"},
	{0xFA, 0x00FA, "Latin Small Letter U With Acute"},
	{0xFB, 0x00FB, "Latin Small Letter U With Circumflex"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x0131, "Latin Small Letter Dotless I"},
	{0xFE, 0x015F, "Latin Small Letter S With Cedilla"},
	{0xFF, 0x00FF, "Latin Small Letter Y With Diaeresis"},
}}

var iso8859_10Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x0104, "Latin Capital Letter A With Ogonek"},
	{0xA2, 0x0112, "Latin Capital Letter E With Macron"},
	{0xA3, 0x0122, "Latin Capital Letter G With Cedilla"},
	{0xA4, 0x012A, "Latin Capital Letter I With Macron"},
	{0xA5, 0x0128, "Latin Capital Letter I With Tilde"},
	{0xA6, 0x0136, "Latin Capital Letter K With Cedilla"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x013B, "Latin Capital Letter L With Cedilla"},
	{0xA9, 0x0110, "Latin Capital Letter D With Stroke"},
	{0xAA, 0x0160, "Latin Capital Letter S With Caron"},
	{0xAB, 0x0166, "Latin Capital Letter T With Stroke"},
	{0xAC, 0x017D, "Latin Capital Letter Z With Caron"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x016A, "Latin Capital Letter U With Macron"},
	{0xAF, 0x014A, "Latin Capital Letter Eng"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x0105, "Latin Small Letter A With Ogonek"},
	{0xB2, 0x0113, "Latin Small Letter E With Macron"},
	{0xB3, 0x0123, "Latin Small Letter G With Cedilla"},
	{0xB4, 0x012B, "Latin Small Letter I With Macron"},
	{0xB5, 0x0129, "Latin Small Letter I With Tilde"},
	{0xB6, 0x0137, "Latin Small Letter K With Cedilla"},
	{0xB7, 0x00B7, "Middle Dot"},
	{0xB8, 0x013C, "Latin Small Letter L With Cedilla"},
	{0xB9, 0x0111, "Latin Small Letter D With Stroke"},
	{0xBA, 0x0161, "Latin Small Letter S With Caron"},
	{0xBB, 0x0167, "Latin Small Letter T With Stroke"},
	{0xBC, 0x017E, "Latin Small Letter Z With Caron"},
	{0xBD, 0x2015, "Horizontal Bar"},
	{0xBE, 0x016B, "Latin Small Letter U With Macron"},
	{0xBF, 0x014B, "Latin Small Letter Eng"},
	{0xC0, 0x0100, "Latin Capital Letter A With Macron"},
	{0xC1, 0x00C1, "Latin Capital Letter A With Acute"},
	{0xC2, 0x00C2, "Latin Capital Letter A With Circumflex"},
	{0xC3, 0x00C3, "Latin Capital Letter A With Tilde"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x00C5, "Latin Capital Letter A With Ring Above"},
	{0xC6, 0x00C6, "Latin Capital Letter Ae"},
	{0xC7, 0x012E, "Latin Capital Letter I With Ogonek"},
	{0xC8, 0x010C, "Latin Capital Letter C With Caron"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x0118, "Latin Capital Letter E With Ogonek"},
	{0xCB, 0x00CB, "Latin Capital Letter E With Diaeresis"},
	{0xCC, 0x0116, "Latin Capital Letter E With Dot Above"},
	{0xCD, 0x00CD, "Latin Capital Letter I With Acute"},
	{0xCE, 0x00CE, "Latin Capital Letter I With Circumflex"},
	{0xCF, 0x00CF, "Latin Capital Letter I With Diaeresis"},
	{0xD0, 0x00D0, "Latin Capital Letter Eth"},
	{0xD1, 0x0145, "Latin Capital Letter N With Cedilla"},
	{0xD2, 0x014C, "Latin Capital Letter O With Macron"},
	{0xD3, 0x00D3, "Latin Capital Letter O With Acute"},
	{0xD4, 0x00D4, "Latin Capital Letter O With Circumflex"},
	{0xD5, 0x00D5, "Latin Capital Letter O With Tilde"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x0168, "Latin Capital Letter U With Tilde"},
	{0xD8, 0x00D8, "Latin Capital Letter O With Stroke"},
	{0xD9, 0x0172, "Latin Capital Letter U With Ogonek"},
	{0xDA, 0x00DA, "Latin Capital Letter U With Acute"},
	{0xDB, 0x00DB, "Latin Capital Letter U With Circumflex"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x00DD, "Latin Capital Letter Y With Acute"},
	{0xDE, 0x00DE, "Latin Capital Letter Thorn"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x0101, "Latin Small Letter A With Macron"},
	{0xE1, 0x00E1, "Latin Small Letter A With Acute"},
	{0xE2, 0x00E2, "Latin Small Letter A With Circumflex"},
	{0xE3, 0x00E3, "Latin Small Letter A With Tilde"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x00E5, "Latin Small Letter A With Ring Above"},
	{0xE6, 0x00E6, "Latin Small Letter Ae"},
	{0xE7, 0x012F, "Latin Small Letter I With Ogonek"},
	{0xE8, 0x010D, "Latin Small Letter C With Caron"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x0119, "Latin Small Letter E With Ogonek"},
	{0xEB, 0x00EB, "Latin Small Letter E With Diaeresis"},
	{0xEC, 0x0117, "Latin Small Letter E With Dot Above"},
	{0xED, 0x00ED, "Latin Small Letter I With Acute"},
	{0xEE, 0x00EE, "Latin Small Letter I With Circumflex"},
	{0xEF, 0x00EF, "Latin Small Letter I With Diaeresis"},
	{0xF0, 0x00F0, "Latin Small Letter Eth"},
	{0xF1, 0x0146, "Latin Small Letter N With Cedilla"},
	{0xF2, 0x014D, "Latin Small Letter O With Macron"},
	{0xF3, 0x00F3, "Latin Small Letter O With Acute"},
	{0xF4, 0x00F4, "Latin Small Letter O With Circumflex"},
	{0xF5, 0x00F5, "Latin Small Letter O With Tilde"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x0169, "Latin Small Letter U With Tilde"},
	{0xF8, 0x00F8, "Latin Small Letter O With Stroke"},
	{0xF9, 0x0173, "Latin Small Letter U With Ogonek"},
	{0xFA, 0x00FA, "Latin Small Letter U With Acute"},
	{0xFB, 0x00FB, "Latin Small Letter U With Circumflex"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x00FD, "Latin Small Letter Y With Acute"},
	{0xFE, 0x00FE, "Latin Small Letter Thorn"},
	{0xFF, 0x0138, "Latin Small Letter Kra"},
}}

var iso8859_11Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x0E01, "Thai Character Ko Kai"},
	{0xA2, 0x0E02, "Thai Character Kho Khai"},
	{0xA3, 0x0E03, "Thai Character Kho Khuat"},
	{0xA4, 0x0E04, "Thai Character Kho Khwai"},
	{0xA5, 0x0E05, "Thai Character Kho Khon"},
	{0xA6, 0x0E06, "Thai Character Kho Rakhang"},
	{0xA7, 0x0E07, "Thai Character Ngo Ngu"},
	{0xA8, 0x0E08, "Thai Character Cho Chan"},
	{0xA9, 0x0E09, "Thai Character Cho Ching"},
	{0xAA, 0x0E0A, "Thai Character Cho Chang"},
	{0xAB, 0x0E0B, "Thai Character So So"},
	{0xAC, 0x0E0C, "Thai Character Cho Choe"},
	{0xAD, 0x0E0D, "Thai Character Yo Ying"},
	{0xAE, 0x0E0E, "Thai Character Do Chada"},
	{0xAF, 0x0E0F, "Thai Character To Patak"},
	{0xB0, 0x0E10, "Thai Character Tho Than"},
	{0xB1, 0x0E11, "Thai Character Tho Nangmontho"},
	{0xB2, 0x0E12, "Thai Character Tho Phuthao"},
	{0xB3, 0x0E13, "Thai Character No Nen"},
	{0xB4, 0x0E14, "Thai Character Do Dek"},
	{0xB5, 0x0E15, "Thai Character To Tao"},
	{0xB6, 0x0E16, "Thai Character Tho Thung"},
	{0xB7, 0x0E17, "Thai Character Tho Thahan"},
	{0xB8, 0x0E18, "Thai Character Tho Thong"},
	{0xB9, 0x0E19, "Thai Character No Nu"},
	{0xBA, 0x0E1A, "Thai Character Bo Baimai"},
	{0xBB, 0x0E1B, "Thai Character Po Pla"},
	{0xBC, 0x0E1C, "Thai Character Pho Phung"},
	{0xBD, 0x0E1D, "Thai Character Fo Fa"},
	{0xBE, 0x0E1E, "Thai Character Pho Phan"},
	{0xBF, 0x0E1F, "Thai Character Fo Fan"},
	{0xC0, 0x0E20, "Thai Character Pho Samphao"},
	{0xC1, 0x0E21, "Thai Character Mo Ma"},
	{0xC2, 0x0E22, "Thai Character Yo Yak"},
	{0xC3, 0x0E23, "Thai Character Ro Rua"},
	{0xC4, 0x0E24, "Thai Character Ru"},
	{0xC5, 0x0E25, "Thai Character Lo Ling"},
	{0xC6, 0x0E26, "Thai Character Lu"},
	{0xC7, 0x0E27, "Thai Character Wo Waen"},
	{0xC8, 0x0E28, "Thai Character So Sala"},
	{0xC9, 0x0E29, "Thai Character So Rusi"},
	{0xCA, 0x0E2A, "Thai Character So Sua"},
	{0xCB, 0x0E2B, "Thai Character Ho Hip"},
	{0xCC, 0x0E2C, "Thai Character Lo Chula"},
	{0xCD, 0x0E2D, "Thai Character O Ang"},
	{0xCE, 0x0E2E, "Thai Character Ho Nokhuk"},
	{0xCF, 0x0E2F, "Thai Character Paiyannoi"},
	{0xD0, 0x0E30, "Thai Character Sara A"},
	{0xD1, 0x0E31, "Thai Character Mai Han-Akat"},
	{0xD2, 0x0E32, "Thai Character Sara Aa"},
	{0xD3, 0x0E33, "Thai Character Sara Am"},
	{0xD4, 0x0E34, "Thai Character Sara I"},
	{0xD5, 0x0E35, "Thai Character Sara Ii"},
	{0xD6, 0x0E36, "Thai Character Sara Ue"},
	{0xD7, 0x0E37, "Thai Character Sara Uee"},
	{0xD8, 0x0E38, "Thai Character Sara U"},
	{0xD9, 0x0E39, "Thai Character Sara Uu"},
	{0xDA, 0x0E3A, "Thai Character Phinthu"},
	{0xDF, 0x0E3F, "Thai Currency Symbol Baht"},
	{0xE0, 0x0E40, "Thai Character Sara E"},
	{0xE1, 0x0E41, "Thai Character Sara Ae"},
	{0xE2, 0x0E42, "Thai Character Sara O"},
	{0xE3, 0x0E43, "Thai Character Sara Ai Maimuan"},
	{0xE4, 0x0E44, "Thai Character Sara Ai Maimalai"},
	{0xE5, 0x0E45, "Thai Character Lakkhangyao"},
	{0xE6, 0x0E46, "Thai Character Maiyamok"},
	{0xE7, 0x0E47, "Thai Character Maitaikhu"},
	{0xE8, 0x0E48, "Thai Character Mai Ek"},
	{0xE9, 0x0E49, "Thai Character Mai Tho"},
	{0xEA, 0x0E4A, "Thai Character Mai Tri"},
	{0xEB, 0x0E4B, "Thai Character Mai Chattawa"},
	{0xEC, 0x0E4C, "Thai Character Thanthakhat"},
	{0xED, 0x0E4D, "Thai Character Nikhahit"},
	{0xEE, 0x0E4E, "Thai Character Yamakkan"},
	{0xEF, 0x0E4F, "Thai Character Fongman"},
	{0xF0, 0x0E50, "Thai Digit Zero"},
	{0xF1, 0x0E51, "Thai Digit One"},
	{0xF2, 0x0E52, "Thai Digit Two"},
	{0xF3, 0x0E53, "Thai Digit Three"},
	{0xF4, 0x0E54, "Thai Digit Four"},
	{0xF5, 0x0E55, "Thai Digit Five"},
	{0xF6, 0x0E56, "Thai Digit Six"},
	{0xF7, 0x0E57, "Thai Digit Seven"},
	{0xF8, 0x0E58, "Thai Digit Eight"},
	{0xF9, 0x0E59, "Thai Digit Nine"},
	{0xFA, 0x0E5A, "Thai Character Angkhankhu"},
	{0xFB, 0x0E5B, "Thai Character Khomut"},
}}

var iso8859_13Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x201D, "Right Double Quotation Mark"},
	{0xA2, 0x00A2, "Cent Sign"},
	{0xA3, 0x00A3, "Pound Sign"},
	{0xA4, 0x00A4, "Currency Sign"},
	{0xA5, 0x201E, "Double Low-9 Quotation Mark"},
	{0xA6, 0x00A6, "Broken Bar"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x00D8, "Latin Capital Letter O With Stroke"},
	{0xA9, 0x00A9, "Copyright Sign"},
	{0xAA, 0x0156, "Latin Capital Letter R With Cedilla"},
	{0xAB, 0x00AB, "Left-Pointing Double Angle Quotation Mark"},
	{0xAC, 0x00AC, "Not Sign"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x00AE, "Registered Sign"},
	{0xAF, 0x00C6, "Latin Capital Letter Ae"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x00B1, "Plus-Minus Sign"},
	{0xB2, 0x00B2, "Superscript Two"},
	{0xB3, 0x00B3, "Superscript Three"},
	{0xB4, 0x201C, "Left Double Quotation Mark"},
	{0xB5, 0x00B5, "Micro Sign"},
	{0xB6, 0x00B6, "Pilcrow Sign"},
	{0xB7, 0x00B7, "Middle Dot"},
	{0xB8, 0x00F8, "Latin Small Letter O With Stroke"},
	{0xB9, 0x00B9, "Superscript One"},
	{0xBA, 0x0157, "Latin Small Letter R With Cedilla"},
	{0xBB, 0x00BB, "Right-Pointing Double Angle Quotation Mark"},
	{0xBC, 0x00BC, "Vulgar Fraction One Quarter"},
	{0xBD, 0x00BD, "Vulgar Fraction One Half"},
	{0xBE, 0x00BE, "Vulgar Fraction Three Quarters"},
	{0xBF, 0x00E6, "Latin Small Letter Ae"},
	{0xC0, 0x0104, "Latin Capital Letter A With Ogonek"},
	{0xC1, 0x012E, "Latin Capital Letter I With Ogonek"},
	{0xC2, 0x0100, "Latin Capital Letter A With Macron"},
	{0xC3, 0x0106, "Latin Capital Letter C With Acute"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x00C5, "Latin Capital Letter A With Ring Above"},
	{0xC6, 0x0118, "Latin Capital Letter E With Ogonek"},
	{0xC7, 0x0112, "Latin Capital Letter E With Macron"},
	{0xC8, 0x010C, "Latin Capital Letter C With Caron"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x0179, "Latin Capital Letter Z With Acute"},
	{0xCB, 0x0116, "Latin Capital Letter E With Dot Above"},
	{0xCC, 0x0122, "Latin Capital Letter G With Cedilla"},
	{0xCD, 0x0136, "Latin Capital Letter K With Cedilla"},
	{0xCE, 0x012A, "Latin Capital Letter I With Macron"},
	{0xCF, 0x013B, "Latin Capital Letter L With Cedilla"},
	{0xD0, 0x0160, "Latin Capital Letter S With Caron"},
	{0xD1, 0x0143, "Latin Capital Letter N With Acute"},
	{0xD2, 0x0145, "Latin Capital Letter N With Cedilla"},
	{0xD3, 0x00D3, "Latin Capital Letter O With Acute"},
	{0xD4, 0x014C, "Latin Capital Letter O With Macron"},
	{0xD5, 0x00D5, "Latin Capital Letter O With Tilde"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x00D7, "Multiplication Sign"},
	{0xD8, 0x0172, "Latin Capital Letter U With Ogonek"},
	{0xD9, 0x0141, "Latin Capital Letter L With Stroke"},
	{0xDA, 0x015A, "Latin Capital Letter S With Acute"},
	{0xDB, 0x016A, "Latin Capital Letter U With Macron"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x017B, "Latin Capital Letter Z With Dot Above"},
	{0xDE, 0x017D, "Latin Capital Letter Z With Caron"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x0105, "Latin Small Letter A With Ogonek"},
	{0xE1, 0x012F, "Latin Small Letter I With Ogonek"},
	{0xE2, 0x0101, "Latin Small Letter A With Macron"},
	{0xE3, 0x0107, "Latin Small Letter C With Acute"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x00E5, "Latin Small Letter A With Ring Above"},
	{0xE6, 0x0119, "Latin Small Letter E With Ogonek"},
	{0xE7, 0x0113, "Latin Small Letter E With Macron"},
	{0xE8, 0x010D, "Latin Small Letter C With Caron"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x017A, "Latin Small Letter Z With Acute"},
	{0xEB, 0x0117, "Latin Small Letter E With Dot Above"},
	{0xEC, 0x0123, "Latin Small Letter G With Cedilla"},
	{0xED, 0x0137, "Latin Small Letter K With Cedilla"},
	{0xEE, 0x012B, "Latin Small Letter I With Macron"},
	{0xEF, 0x013C, "Latin Small Letter L With Cedilla"},
	{0xF0, 0x0161, "Latin Small Letter S With Caron"},
	{0xF1, 0x0144, "Latin Small Letter N With Acute"},
	{0xF2, 0x0146, "Latin Small Letter N With Cedilla"},
	{0xF3, 0x00F3, "Latin Small Letter O With Acute"},
	{0xF4, 0x014D, "Latin Small Letter O With Macron"},
	{0xF5, 0x00F5, "Latin Small Letter O With Tilde"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x00F7, "Division Sign"},
	{0xF8, 0x0173, "Latin Small Letter U With Ogonek"},
	{0xF9, 0x0142, "Latin Small Letter L With Stroke"},
	{0xFA, 0x015B, "Latin Small Letter S With Acute"},
	{0xFB, 0x016B, "Latin Small Letter U With Macron"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x017C, "Latin Small Letter Z With Dot Above"},
	{0xFE, 0x017E, "Latin Small Letter Z With Caron"},
	{0xFF, 0x2019, "Right Single Quotation Mark"},
}}

var iso8859_14Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x1E02, "Latin Capital Letter B With Dot Above"},
	{0xA2, 0x1E03, "Latin Small Letter B With Dot Above"},
	{0xA3, 0x00A3, "Pound Sign"},
	{0xA4, 0x010A, "Latin Capital Letter C With Dot Above"},
	{0xA5, 0x010B, "Latin Small Letter C With Dot Above"},
	{0xA6, 0x1E0A, "Latin Capital Letter D With Dot Above"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x1E80, "Latin Capital Letter W With Grave"},
	{0xA9, 0x00A9, "Copyright Sign"},
	{0xAA, 0x1E82, "Latin Capital Letter W With Acute"},
	{0xAB, 0x1E0B, "Latin Small Letter D With Dot Above"},
	{0xAC, 0x1EF2, "Latin Capital Letter Y With Grave"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x00AE, "Registered Sign"},
	{0xAF, 0x0178, "Latin Capital Letter Y With Diaeresis"},
	{0xB0, 0x1E1E, "Latin Capital Letter F With Dot Above"},
	{0xB1, 0x1E1F, "Latin Small Letter F With Dot Above"},
	{0xB2, 0x0120, "Latin Capital Letter G With Dot Above"},
	{0xB3, 0x0121, "Latin Small Letter G With Dot Above"},
	{0xB4, 0x1E40, "Latin Capital Letter M With Dot Above"},
	{0xB5, 0x1E41, "Latin Small Letter M With Dot Above"},
	{0xB6, 0x00B6, "Pilcrow Sign"},
	{0xB7, 0x1E56, "Latin Capital Letter P With Dot Above"},
	{0xB8, 0x1E81, "Latin Small Letter W With Grave"},
	{0xB9, 0x1E57, "Latin Small Letter P With Dot Above"},
	{0xBA, 0x1E83, "Latin Small Letter W With Acute"},
	{0xBB, 0x1E60, "Latin Capital Letter S With Dot Above"},
	{0xBC, 0x1EF3, "Latin Small Letter Y With Grave"},
	{0xBD, 0x1E84, "Latin Capital Letter W With Diaeresis"},
	{0xBE, 0x1E85, "Latin Small Letter W With Diaeresis"},
	{0xBF, 0x1E61, "Latin Small Letter S With Dot Above"},
	{0xC0, 0x00C0, "Latin Capital Letter A With Grave"},
	{0xC1, 0x00C1, "Latin Capital Letter A With Acute"},
	{0xC2, 0x00C2, "Latin Capital Letter A With Circumflex"},
	{0xC3, 0x00C3, "Latin Capital Letter A With Tilde"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x00C5, "Latin Capital Letter A With Ring Above"},
	{0xC6, 0x00C6, "Latin Capital Letter Ae"},
	{0xC7, 0x00C7, "Latin Capital Letter C With Cedilla"},
	{0xC8, 0x00C8, "Latin Capital Letter E With Grave"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x00CA, "Latin Capital Letter E With Circumflex"},
	{0xCB, 0x00CB, "Latin Capital Letter E With Diaeresis"},
	{0xCC, 0x00CC, "Latin Capital Letter I With Grave"},
	{0xCD, 0x00CD, "Latin Capital Letter I With Acute"},
	{0xCE, 0x00CE, "Latin Capital Letter I With Circumflex"},
	{0xCF, 0x00CF, "Latin Capital Letter I With Diaeresis"},
	{0xD0, 0x0174, "Latin Capital Letter W With Circumflex"},
	{0xD1, 0x00D1, "Latin Capital Letter N With Tilde"},
	{0xD2, 0x00D2, "Latin Capital Letter O With Grave"},
	{0xD3, 0x00D3, "Latin Capital Letter O With Acute"},
	{0xD4, 0x00D4, "Latin Capital Letter O With Circumflex"},
	{0xD5, 0x00D5, "Latin Capital Letter O With Tilde"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x1E6A, "Latin Capital Letter T With Dot Above"},
	{0xD8, 0x00D8, "Latin Capital Letter O With Stroke"},
	{0xD9, 0x00D9, "Latin Capital Letter U With Grave"},
	{0xDA, 0x00DA, "Latin Capital Letter U With Acute"},
	{0xDB, 0x00DB, "Latin Capital Letter U With Circumflex"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x00DD, "Latin Capital Letter Y With Acute"},
	{0xDE, 0x0176, "Latin Capital Letter Y With Circumflex"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x00E0, "Latin Small Letter A With Grave"},
	{0xE1, 0x00E1, "Latin Small Letter A With Acute"},
	{0xE2, 0x00E2, "Latin Small Letter A With Circumflex"},
	{0xE3, 0x00E3, "Latin Small Letter A With Tilde"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x00E5, "Latin Small Letter A With Ring Above"},
	{0xE6, 0x00E6, "Latin Small Letter Ae"},
	{0xE7, 0x00E7, "Latin Small Letter C With Cedilla"},
	{0xE8, 0x00E8, "Latin Small Letter E With Grave"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x00EA, "Latin Small Letter E With Circumflex"},
	{0xEB, 0x00EB, "Latin Small Letter E With Diaeresis"},
	{0xEC, 0x00EC, "Latin Small Letter I With Grave"},
	{0xED, 0x00ED, "Latin Small Letter I With Acute"},
	{0xEE, 0x00EE, "Latin Small Letter I With Circumflex"},
	{0xEF, 0x00EF, "Latin Small Letter I With Diaeresis"},
	{0xF0, 0x0175, "Latin Small Letter W With Circumflex"},
	{0xF1, 0x00F1, "Latin Small Letter N With Tilde"},
	{0xF2, 0x00F2, "Latin Small Letter O With Grave"},
	{0xF3, 0x00F3, "Latin Small Letter O With Acute"},
	{0xF4, 0x00F4, "Latin Small Letter O With Circumflex"},
	{0xF5, 0x00F5, "Latin Small Letter O With Tilde"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x1E6B, "Latin Small Letter T With Dot Above"},
	{0xF8, 0x00F8, "Latin Small Letter O With Stroke"},
	{0xF9, 0x00F9, "Latin Small Letter U With Grave"},
	{0xFA, 0x00FA, "Latin Small Letter U With Acute"},
	{0xFB, 0x00FB, "Latin Small Letter U With Circumflex"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x00FD, "Latin Small Letter Y With Acute"},
	{0xFE, 0x0177, "Latin Small Letter Y With Circumflex"},
	{0xFF, 0x00FF, "Latin Small Letter Y With Diaeresis"},
}}

var iso8859_15Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x00A1, "Inverted Exclamation Mark"},
	{0xA2, 0x00A2, "Cent Sign"},
	{0xA3, 0x00A3, "Pound Sign"},
	{0xA4, 0x20AC, "Euro Sign"},
	{0xA5, 0x00A5, "Yen Sign"},
	{0xA6, 0x0160, "Latin Capital Letter S With Caron"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x0161, "Latin Small Letter S With Caron"},
	{0xA9, 0x00A9, "Copyright Sign"},
	{0xAA, 0x00AA, "Feminine Ordinal Indicator"},
	{0xAB, 0x00AB, "Left-Pointing Double Angle Quotation Mark"},
	{0xAC, 0x00AC, "Not Sign"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x00AE, "Registered Sign"},
	{0xAF, 0x00AF, "Macron"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x00B1, "Plus-Minus Sign"},
	{0xB2, 0x00B2, "Superscript Two"},
	{0xB3, 0x00B3, "Superscript Three"},
	{0xB4, 0x017D, "Latin Capital Letter Z With Caron"},
	{0xB5, 0x00B5, "Micro Sign"},
	{0xB6, 0x00B6, "Pilcrow Sign"},
	{0xB7, 0x00B7, "Middle Dot"},
	{0xB8, 0x017E, "Latin Small Letter Z With Caron"},
	{0xB9, 0x00B9, "Superscript One"},
	{0xBA, 0x00BA, "Masculine Ordinal Indicator"},
	{0xBB, 0x00BB, "Right-Pointing Double Angle Quotation Mark"},
	{0xBC, 0x0152, "Latin Capital Ligature Oe"},
	{0xBD, 0x0153, "Latin Small Ligature Oe"},
	{0xBE, 0x0178, "Latin Capital Letter Y With Diaeresis"},
	{0xBF, 0x00BF, "Inverted Question Mark"},
	{0xC0, 0x00C0, "Latin Capital Letter A With Grave"},
	{0xC1, 0x00C1, "Latin Capital Letter A With Acute"},
	{0xC2, 0x00C2, "Latin Capital Letter A With Circumflex"},
	{0xC3, 0x00C3, "Latin Capital Letter A With Tilde"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x00C5, "Latin Capital Letter A With Ring Above"},
	{0xC6, 0x00C6, "Latin Capital Letter Ae"},
	{0xC7, 0x00C7, "Latin Capital Letter C With Cedilla"},
	{0xC8, 0x00C8, "Latin Capital Letter E With Grave"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x00CA, "Latin Capital Letter E With Circumflex"},
	{0xCB, 0x00CB, "Latin Capital Letter E With Diaeresis"},
	{0xCC, 0x00CC, "Latin Capital Letter I With Grave"},
	{0xCD, 0x00CD, "Latin Capital Letter I With Acute"},
	{0xCE, 0x00CE, "Latin Capital Letter I With Circumflex"},
	{0xCF, 0x00CF, "Latin Capital Letter I With Diaeresis"},
	{0xD0, 0x00D0, "Latin Capital Letter Eth"},
	{0xD1, 0x00D1, "Latin Capital Letter N With Tilde"},
	{0xD2, 0x00D2, "Latin Capital Letter O With Grave"},
	{0xD3, 0x00D3, "Latin Capital Letter O With Acute"},
	{0xD4, 0x00D4, "Latin Capital Letter O With Circumflex"},
	{0xD5, 0x00D5, "Latin Capital Letter O With Tilde"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x00D7, "Multiplication Sign"},
	{0xD8, 0x00D8, "Latin Capital Letter O With Stroke"},
	{0xD9, 0x00D9, "Latin Capital Letter U With Grave"},
	{0xDA, 0x00DA, "Latin Capital Letter U With Acute"},
	{0xDB, 0x00DB, "Latin Capital Letter U With Circumflex"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x00DD, "Latin Capital Letter Y With Acute"},
	{0xDE, 0x00DE, "Latin Capital Letter Thorn"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x00E0, "Latin Small Letter A With Grave"},
	{0xE1, 0x00E1, "Latin Small Letter A With Acute"},
	{0xE2, 0x00E2, "Latin Small Letter A With Circumflex"},
	{0xE3, 0x00E3, "Latin Small Letter A With Tilde"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x00E5, "Latin Small Letter A With Ring Above"},
	{0xE6, 0x00E6, "Latin Small Letter Ae"},
	{0xE7, 0x00E7, "Latin Small Letter C With Cedilla"},
	{0xE8, 0x00E8, "Latin Small Letter E With Grave"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x00EA, "Latin Small Letter E With Circumflex"},
	{0xEB, 0x00EB, "Latin Small Letter E With Diaeresis"},
	{0xEC, 0x00EC, "Latin Small Letter I With Grave"},
	{0xED, 0x00ED, "Latin Small Letter I With Acute"},
	{0xEE, 0x00EE, "Latin Small Letter I With Circumflex"},
	{0xEF, 0x00EF, "Latin Small Letter I With Diaeresis"},
	{0xF0, 0x00F0, "Latin Small Letter Eth"},
	{0xF1, 0x00F1, "Latin Small Letter N With Tilde"},
	{0xF2, 0x00F2, "Latin Small Letter O With Grave"},
	{0xF3, 0x00F3, "Latin Small Letter O With Acute"},
	{0xF4, 0x00F4, "Latin Small Letter O With Circumflex"},
	{0xF5, 0x00F5, "Latin Small Letter O With Tilde"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x00F7, "Division Sign"},
	{0xF8, 0x00F8, "Latin Small Letter O With Stroke"},
	{0xF9, 0x00F9, "Latin Small Letter U With Grave"},
	{0xFA, 0x00FA, "Latin Small Letter U With Acute"},
	{0xFB, 0x00FB, "Latin Small Letter U With Circumflex"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x00FD, "Latin Small Letter Y With Acute"},
	{0xFE, 0x00FE, "Latin Small Letter Thorn"},
	{0xFF, 0x00FF, "Latin Small Letter Y With Diaeresis"},
}}

var iso8859_16Table = cpTable{entries: []cpMapEntry{
	{0x00, 0x0000, "Null"},
	{0x01, 0x0001, "Start Of Heading"},
	{0x02, 0x0002, "Start Of Text"},
	{0x03, 0x0003, "End Of Text"},
	{0x04, 0x0004, "End Of Transmission"},
	{0x05, 0x0005, "Enquiry"},
	{0x06, 0x0006, "Acknowledge"},
	{0x07, 0x0007, "Bell"},
	{0x08, 0x0008, "Backspace"},
	{0x09, 0x0009, "Horizontal Tabulation"},
	{0x0A, 0x000A, "Line Feed"},
	{0x0B, 0x000B, "Vertical Tabulation"},
	{0x0C, 0x000C, "Form Feed"},
	{0x0D, 0x000D, "Carriage Return"},
	{0x0E, 0x000E, "Shift Out"},
	{0x0F, 0x000F, "Shift In"},
	{0x10, 0x0010, "Data Link Escape"},
	{0x11, 0x0011, "Device Control One"},
	{0x12, 0x0012, "Device Control Two"},
	{0x13, 0x0013, "Device Control Three"},
	{0x14, 0x0014, "Device Control Four"},
	{0x15, 0x0015, "Negative Acknowledge"},
	{0x16, 0x0016, "Synchronous Idle"},
	{0x17, 0x0017, "End Of Transmission Block"},
	{0x18, 0x0018, "Cancel"},
	{0x19, 0x0019, "End Of Medium"},
	{0x1A, 0x001A, "Substitute"},
	{0x1B, 0x001B, "Escape"},
	{0x1C, 0x001C, "File Separator"},
	{0x1D, 0x001D, "Group Separator"},
	{0x1E, 0x001E, "Record Separator"},
	{0x1F, 0x001F, "Unit Separator"},
	{0x20, 0x0020, "Space"},
	{0x21, 0x0021, "Exclamation Mark"},
	{0x22, 0x0022, "Quotation Mark"},
	{0x23, 0x0023, "Number Sign"},
	{0x24, 0x0024, "Dollar Sign"},
	{0x25, 0x0025, "Percent Sign"},
	{0x26, 0x0026, "Ampersand"},
	{0x27, 0x0027, "Apostrophe"},
	{0x28, 0x0028, "Left Parenthesis"},
	{0x29, 0x0029, "Right Parenthesis"},
	{0x2A, 0x002A, "Asterisk"},
	{0x2B, 0x002B, "Plus Sign"},
	{0x2C, 0x002C, "Comma"},
	{0x2D, 0x002D, "Hyphen-Minus"},
	{0x2E, 0x002E, "Full Stop"},
	{0x2F, 0x002F, "Solidus"},
	{0x30, 0x0030, "Digit Zero"},
	{0x31, 0x0031, "Digit One"},
	{0x32, 0x0032, "Digit Two"},
	{0x33, 0x0033, "Digit Three"},
	{0x34, 0x0034, "Digit Four"},
	{0x35, 0x0035, "Digit Five"},
	{0x36, 0x0036, "Digit Six"},
	{0x37, 0x0037, "Digit Seven"},
	{0x38, 0x0038, "Digit Eight"},
	{0x39, 0x0039, "Digit Nine"},
	{0x3A, 0x003A, "Colon"},
	{0x3B, 0x003B, "Semicolon"},
	{0x3C, 0x003C, "Less-Than Sign"},
	{0x3D, 0x003D, "Equals Sign"},
	{0x3E, 0x003E, "Greater-Than Sign"},
	{0x3F, 0x003F, "Question Mark"},
	{0x40, 0x0040, "Commercial At"},
	{0x41, 0x0041, "Latin Capital Letter A"},
	{0x42, 0x0042, "Latin Capital Letter B"},
	{0x43, 0x0043, "Latin Capital Letter C"},
	{0x44, 0x0044, "Latin Capital Letter D"},
	{0x45, 0x0045, "Latin Capital Letter E"},
	{0x46, 0x0046, "Latin Capital Letter F"},
	{0x47, 0x0047, "Latin Capital Letter G"},
	{0x48, 0x0048, "Latin Capital Letter H"},
	{0x49, 0x0049, "Latin Capital Letter I"},
	{0x4A, 0x004A, "Latin Capital Letter J"},
	{0x4B, 0x004B, "Latin Capital Letter K"},
	{0x4C, 0x004C, "Latin Capital Letter L"},
	{0x4D, 0x004D, "Latin Capital Letter M"},
	{0x4E, 0x004E, "Latin Capital Letter N"},
	{0x4F, 0x004F, "Latin Capital Letter O"},
	{0x50, 0x0050, "Latin Capital Letter P"},
	{0x51, 0x0051, "Latin Capital Letter Q"},
	{0x52, 0x0052, "Latin Capital Letter R"},
	{0x53, 0x0053, "Latin Capital Letter S"},
	{0x54, 0x0054, "Latin Capital Letter T"},
	{0x55, 0x0055, "Latin Capital Letter U"},
	{0x56, 0x0056, "Latin Capital Letter V"},
	{0x57, 0x0057, "Latin Capital Letter W"},
	{0x58, 0x0058, "Latin Capital Letter X"},
	{0x59, 0x0059, "Latin Capital Letter Y"},
	{0x5A, 0x005A, "Latin Capital Letter Z"},
	{0x5B, 0x005B, "Left Square Bracket"},
	{0x5C, 0x005C, "Reverse Solidus"},
	{0x5D, 0x005D, "Right Square Bracket"},
	{0x5E, 0x005E, "Circumflex Accent"},
	{0x5F, 0x005F, "Low Line"},
	{0x60, 0x0060, "Grave Accent"},
	{0x61, 0x0061, "Latin Small Letter A"},
	{0x62, 0x0062, "Latin Small Letter B"},
	{0x63, 0x0063, "Latin Small Letter C"},
	{0x64, 0x0064, "Latin Small Letter D"},
	{0x65, 0x0065, "Latin Small Letter E"},
	{0x66, 0x0066, "Latin Small Letter F"},
	{0x67, 0x0067, "Latin Small Letter G"},
	{0x68, 0x0068, "Latin Small Letter H"},
	{0x69, 0x0069, "Latin Small Letter I"},
	{0x6A, 0x006A, "Latin Small Letter J"},
	{0x6B, 0x006B, "Latin Small Letter K"},
	{0x6C, 0x006C, "Latin Small Letter L"},
	{0x6D, 0x006D, "Latin Small Letter M"},
	{0x6E, 0x006E, "Latin Small Letter N"},
	{0x6F, 0x006F, "Latin Small Letter O"},
	{0x70, 0x0070, "Latin Small Letter P"},
	{0x71, 0x0071, "Latin Small Letter Q"},
	{0x72, 0x0072, "Latin Small Letter R"},
	{0x73, 0x0073, "Latin Small Letter S"},
	{0x74, 0x0074, "Latin Small Letter T"},
	{0x75, 0x0075, "Latin Small Letter U"},
	{0x76, 0x0076, "Latin Small Letter V"},
	{0x77, 0x0077, "Latin Small Letter W"},
	{0x78, 0x0078, "Latin Small Letter X"},
	{0x79, 0x0079, "Latin Small Letter Y"},
	{0x7A, 0x007A, "Latin Small Letter Z"},
	{0x7B, 0x007B, "Left Curly Bracket"},
	{0x7C, 0x007C, "Vertical Line"},
	{0x7D, 0x007D, "Right Curly Bracket"},
	{0x7E, 0x007E, "Tilde"},
	{0x7F, 0x007F, "Delete"},
	{0x80, 0x0080, "Padding Character"},
	{0x81, 0x0081, "High Octet Preset"},
	{0x82, 0x0082, "Break Permitted Here"},
	{0x83, 0x0083, "No Break Here"},
	{0x84, 0x0084, "Index"},
	{0x85, 0x0085, "Next Line"},
	{0x86, 0x0086, "Start Of Selected Area"},
	{0x87, 0x0087, "End Of Selected Area"},
	{0x88, 0x0088, "Character Tabulation Set"},
	{0x89, 0x0089, "Character Tabulation With Justification"},
	{0x8A, 0x008A, "Line Tabulation Set"},
	{0x8B, 0x008B, "Partial Line Forward"},
	{0x8C, 0x008C, "Partial Line Backward"},
	{0x8D, 0x008D, "Reverse Line Feed"},
	{0x8E, 0x008E, "Single Shift Two"},
	{0x8F, 0x008F, "Single Shift Three"},
	{0x90, 0x0090, "Device Control String"},
	{0x91, 0x0091, "Private Use One"},
	{0x92, 0x0092, "Private Use Two"},
	{0x93, 0x0093, "Set Transmit State"},
	{0x94, 0x0094, "Cancel Character"},
	{0x95, 0x0095, "Message Waiting"},
	{0x96, 0x0096, "Start Of Guarded Area"},
	{0x97, 0x0097, "End Of Guarded Area"},
	{0x98, 0x0098, "Start Of String"},
	{0x99, 0x0099, "Single Graphic Character Introducer"},
	{0x9A, 0x009A, "Single Character Introducer"},
	{0x9B, 0x009B, "Control Sequence Introducer"},
	{0x9C, 0x009C, "String Terminator"},
	{0x9D, 0x009D, "Operating System Command"},
	{0x9E, 0x009E, "Privacy Message"},
	{0x9F, 0x009F, "Application Program Command"},
	{0xA0, 0x00A0, "No-Break Space"},
	{0xA1, 0x0104, "Latin Capital Letter A With Ogonek"},
	{0xA2, 0x0105, "Latin Small Letter A With Ogonek"},
	{0xA3, 0x0141, "Latin Capital Letter L With Stroke"},
	{0xA4, 0x20AC, "Euro Sign"},
	{0xA5, 0x201E, "Double Low-9 Quotation Mark"},
	{0xA6, 0x0160, "Latin Capital Letter S With Caron"},
	{0xA7, 0x00A7, "Section Sign"},
	{0xA8, 0x0161, "Latin Small Letter S With Caron"},
	{0xA9, 0x00A9, "Copyright Sign"},
	{0xAA, 0x0218, "Latin Capital Letter S With Comma Below"},
	{0xAB, 0x00AB, "Left-Pointing Double Angle Quotation Mark"},
	{0xAC, 0x0179, "Latin Capital Letter Z With Acute"},
	{0xAD, 0x00AD, "Soft Hyphen"},
	{0xAE, 0x017A, "Latin Small Letter Z With Acute"},
	{0xAF, 0x017B, "Latin Capital Letter Z With Dot Above"},
	{0xB0, 0x00B0, "Degree Sign"},
	{0xB1, 0x00B1, "Plus-Minus Sign"},
	{0xB2, 0x010C, "Latin Capital Letter C With Caron"},
	{0xB3, 0x0142, "Latin Small Letter L With Stroke"},
	{0xB4, 0x017D, "Latin Capital Letter Z With Caron"},
	{0xB5, 0x201D, "Right Double Quotation Mark"},
	{0xB6, 0x00B6, "Pilcrow Sign"},
	{0xB7, 0x00B7, "Middle Dot"},
	{0xB8, 0x017E, "Latin Small Letter Z With Caron"},
	{0xB9, 0x010D, "Latin Small Letter C With Caron"},
	{0xBA, 0x0219, "Latin Small Letter S With Comma Below"},
	{0xBB, 0x00BB, "Right-Pointing Double Angle Quotation Mark"},
	{0xBC, 0x0152, "Latin Capital Ligature Oe"},
	{0xBD, 0x0153, "Latin Small Ligature Oe"},
	{0xBE, 0x0178, "Latin Capital Letter Y With Diaeresis"},
	{0xBF, 0x017C, "Latin Small Letter Z With Dot Above"},
	{0xC0, 0x00C0, "Latin Capital Letter A With Grave"},
	{0xC1, 0x00C1, "Latin Capital Letter A With Acute"},
	{0xC2, 0x00C2, "Latin Capital Letter A With Circumflex"},
	{0xC3, 0x0102, "Latin Capital Letter A With Breve"},
	{0xC4, 0x00C4, "Latin Capital Letter A With Diaeresis"},
	{0xC5, 0x0106, "Latin Capital Letter C With Acute"},
	{0xC6, 0x00C6, "Latin Capital Letter Ae"},
	{0xC7, 0x00C7, "Latin Capital Letter C With Cedilla"},
	{0xC8, 0x00C8, "Latin Capital Letter E With Grave"},
	{0xC9, 0x00C9, "Latin Capital Letter E With Acute"},
	{0xCA, 0x00CA, "Latin Capital Letter E With Circumflex"},
	{0xCB, 0x00CB, "Latin Capital Letter E With Diaeresis"},
	{0xCC, 0x00CC, "Latin Capital Letter I With Grave"},
	{0xCD, 0x00CD, "Latin Capital Letter I With Acute"},
	{0xCE, 0x00CE, "Latin Capital Letter I With Circumflex"},
	{0xCF, 0x00CF, "Latin Capital Letter I With Diaeresis"},
	{0xD0, 0x0110, "Latin Capital Letter D With Stroke"},
	{0xD1, 0x0143, "Latin Capital Letter N With Acute"},
	{0xD2, 0x00D2, "Latin Capital Letter O With Grave"},
	{0xD3, 0x00D3, "Latin Capital Letter O With Acute"},
	{0xD4, 0x00D4, "Latin Capital Letter O With Circumflex"},
	{0xD5, 0x0150, "Latin Capital Letter O With Double Acute"},
	{0xD6, 0x00D6, "Latin Capital Letter O With Diaeresis"},
	{0xD7, 0x015A, "Latin Capital Letter S With Acute"},
	{0xD8, 0x0170, "Latin Capital Letter U With Double Acute"},
	{0xD9, 0x00D9, "Latin Capital Letter U With Grave"},
	{0xDA, 0x00DA, "Latin Capital Letter U With Acute"},
	{0xDB, 0x00DB, "Latin Capital Letter U With Circumflex"},
	{0xDC, 0x00DC, "Latin Capital Letter U With Diaeresis"},
	{0xDD, 0x0118, "Latin Capital Letter E With Ogonek"},
	{0xDE, 0x021A, "Latin Capital Letter T With Comma Below"},
	{0xDF, 0x00DF, "Latin Small Letter Sharp S"},
	{0xE0, 0x00E0, "Latin Small Letter A With Grave"},
	{0xE1, 0x00E1, "Latin Small Letter A With Acute"},
	{0xE2, 0x00E2, "Latin Small Letter A With Circumflex"},
	{0xE3, 0x0103, "Latin Small Letter A With Breve"},
	{0xE4, 0x00E4, "Latin Small Letter A With Diaeresis"},
	{0xE5, 0x0107, "Latin Small Letter C With Acute"},
	{0xE6, 0x00E6, "Latin Small Letter Ae"},
	{0xE7, 0x00E7, "Latin Small Letter C With Cedilla"},
	{0xE8, 0x00E8, "Latin Small Letter E With Grave"},
	{0xE9, 0x00E9, "Latin Small Letter E With Acute"},
	{0xEA, 0x00EA, "Latin Small Letter E With Circumflex"},
	{0xEB, 0x00EB, "Latin Small Letter E With Diaeresis"},
	{0xEC, 0x00EC, "Latin Small Letter I With Grave"},
	{0xED, 0x00ED, "Latin Small Letter I With Acute"},
	{0xEE, 0x00EE, "Latin Small Letter I With Circumflex"},
	{0xEF, 0x00EF, "Latin Small Letter I With Diaeresis"},
	{0xF0, 0x0111, "Latin Small Letter D With Stroke"},
	{0xF1, 0x0144, "Latin Small Letter N With Acute"},
	{0xF2, 0x00F2, "Latin Small Letter O With Grave"},
	{0xF3, 0x00F3, "Latin Small Letter O With Acute"},
	{0xF4, 0x00F4, "Latin Small Letter O With Circumflex"},
	{0xF5, 0x0151, "Latin Small Letter O With Double Acute"},
	{0xF6, 0x00F6, "Latin Small Letter O With Diaeresis"},
	{0xF7, 0x015B, "Latin Small Letter S With Acute"},
	{0xF8, 0x0171, "Latin Small Letter U With Double Acute"},
	{0xF9, 0x00F9, "Latin Small Letter U With Grave"},
	{0xFA, 0x00FA, "Latin Small Letter U With Acute"},
	{0xFB, 0x00FB, "Latin Small Letter U With Circumflex"},
	{0xFC, 0x00FC, "Latin Small Letter U With Diaeresis"},
	{0xFD, 0x0119, "Latin Small Letter E With Ogonek"},
	{0xFE, 0x021B, "Latin Small Letter T With Comma Below"},
	{0xFF, 0x00FF, "Latin Small Letter Y With Diaeresis"},
}}

