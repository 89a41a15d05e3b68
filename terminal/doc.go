// Package terminal presents rendered frames in a terminal through tcell.
//
// Each cell shows two vertically stacked pixels using the upper half block
// glyph: foreground is the top pixel, background the bottom one. A frame of
// cols × rows cells therefore carries a cols × 2·rows image.
//
// Input is limited to quitting (q, Esc, Ctrl-C), resize and focus changes;
// losing focus pauses the animation clock when one is attached.
package terminal
